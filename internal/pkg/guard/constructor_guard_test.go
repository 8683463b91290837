package guard_test

import (
	"errors"
	"testing"

	"deliveryproof/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Photo struct {
		orderID int64
		name    string
		guard   guard.ConstructorGuard
	}

	var errPhotoNotConstructed = errors.New("Photo must be created via NewPhoto")

	newPhoto := func(orderID int64, name string) (Photo, error) {
		if orderID <= 0 {
			return Photo{}, errors.New("order id must be positive")
		}
		if name == "" {
			return Photo{}, errors.New("name is required")
		}
		return Photo{
			orderID: orderID,
			name:    name,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	validatePhoto := func(p Photo) error {
		return p.guard.Validate(errPhotoNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		photo, err := newPhoto(1024, "entrega_1024_20250101120000.jpg")

		// Then
		require.NoError(t, err)
		require.NoError(t, validatePhoto(photo))
		assert.Equal(t, int64(1024), photo.orderID)
		assert.Equal(t, "entrega_1024_20250101120000.jpg", photo.name)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var photo Photo // zero value

		// When
		err := validatePhoto(photo)

		// Then
		require.Error(t, err)
		assert.Equal(t, errPhotoNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPhoto(-1, "x.jpg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order id must be positive")

		_, err = newPhoto(1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}
