package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"deliveryproof/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID or ParseOrderID")

// MaxOrderID is the largest identifier the pedido_id INTEGER columns hold.
const MaxOrderID = math.MaxInt32

// OrderID identifies a print order. Identifiers are assigned by the shop's
// order system and are always positive integers.
type OrderID struct {
	value int64
}

// NewOrderID wraps an already parsed identifier.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"pedido_id",
			fmt.Errorf("%d is not a positive integer", value),
		)
	}
	if value > MaxOrderID {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"pedido_id",
			fmt.Errorf("%d exceeds %d", value, MaxOrderID),
		)
	}
	return OrderID{value: value}, nil
}

// ParseOrderID parses the identifier typed by an operator. Surrounding
// whitespace is ignored; anything else that is not a base-10 integer in
// [1, MaxOrderID] is rejected.
func ParseOrderID(raw string) (OrderID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return OrderID{}, errs.NewValueIsRequiredError("pedido_id")
	}

	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("pedido_id", err)
	}

	return NewOrderID(value)
}

// Int64 returns the raw identifier.
func (id OrderID) Int64() int64 {
	return id.value
}

// String returns the decimal form used in file names, subjects and logs.
func (id OrderID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate rejects the zero value.
func (id OrderID) Validate() error {
	if id.value <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
