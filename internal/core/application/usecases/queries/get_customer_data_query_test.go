package queries_test

import (
	"testing"

	"deliveryproof/internal/core/application/usecases/queries"
	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerDataQuery(t *testing.T) {
	t.Run("should create query with numeric id", func(t *testing.T) {
		query, err := queries.NewGetCustomerDataQuery(" 1024 ")

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, int64(1024), query.OrderID().Int64())
	})

	t.Run("should reject non numeric id", func(t *testing.T) {
		_, err := queries.NewGetCustomerDataQuery("abc")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := queries.NewGetCustomerDataQuery("")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetCustomerDataQueryForOrder(t *testing.T) {
	t.Run("should create query for a parsed order", func(t *testing.T) {
		id, err := kernel.NewOrderID(77)
		require.NoError(t, err)

		query, err := queries.NewGetCustomerDataQueryForOrder(id)

		require.NoError(t, err)
		assert.True(t, query.OrderID().IsEqual(id))
	})

	t.Run("should reject the zero order", func(t *testing.T) {
		_, err := queries.NewGetCustomerDataQueryForOrder(kernel.OrderID{})

		assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
	})
}

func TestGetCustomerDataQuery_Validate(t *testing.T) {
	query := queries.GetCustomerDataQuery{}

	assert.Equal(t, queries.ErrGetCustomerDataQueryIsNotConstructed, query.Validate())
}
