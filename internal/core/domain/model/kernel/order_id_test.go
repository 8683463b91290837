package kernel_test

import (
	"testing"

	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderID(t *testing.T) {
	t.Run("should parse positive integers", func(t *testing.T) {
		id, err := kernel.ParseOrderID("1024")

		require.NoError(t, err)
		assert.Equal(t, int64(1024), id.Int64())
		assert.Equal(t, "1024", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should ignore surrounding whitespace", func(t *testing.T) {
		id, err := kernel.ParseOrderID("  77\n")

		require.NoError(t, err)
		assert.Equal(t, int64(77), id.Int64())
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.ParseOrderID("   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non numeric and non positive values", func(t *testing.T) {
		for _, input := range []string{"abc", "12a", "1.5", "0", "-3", "99999999999999999999"} {
			_, err := kernel.ParseOrderID(input)

			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})

	t.Run("should accept identifiers up to the INTEGER column bound", func(t *testing.T) {
		id, err := kernel.ParseOrderID("2147483647")

		require.NoError(t, err)
		assert.Equal(t, int64(kernel.MaxOrderID), id.Int64())
	})

	t.Run("should reject identifiers beyond the INTEGER column bound", func(t *testing.T) {
		for _, input := range []string{"2147483648", "3000000000", "9223372036854775807"} {
			_, err := kernel.ParseOrderID(input)

			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}

		_, err := kernel.NewOrderID(kernel.MaxOrderID + 1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID

		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, id.Validate())
	})

	t.Run("equality is by value", func(t *testing.T) {
		a, _ := kernel.NewOrderID(5)
		b, _ := kernel.ParseOrderID("5")
		c, _ := kernel.NewOrderID(6)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
