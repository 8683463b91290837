// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/pkg/guard"
)

var (
	ErrGetCustomerDataQueryIsNotConstructed = errors.New(
		"GetCustomerDataQuery must be created via NewGetCustomerDataQuery constructor",
	)
)

// GetCustomerDataQuery retrieves the customer and address of an order so the
// delivery form can be filled in before the photo is taken.
//
// Example:
//
//	query, err := NewGetCustomerDataQuery("1024")
//	if err != nil {
//	    return err // not a positive integer
//	}
//
//	data, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
//	fmt.Printf("%s, %s (%s)\n", data.Name, data.Address, data.Locality)
type GetCustomerDataQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetCustomerDataQuery parses the order identifier typed by the operator.
func NewGetCustomerDataQuery(rawOrderID string) (GetCustomerDataQuery, error) {
	orderID, err := kernel.ParseOrderID(rawOrderID)
	if err != nil {
		return GetCustomerDataQuery{}, err
	}

	return NewGetCustomerDataQueryForOrder(orderID)
}

// NewGetCustomerDataQueryForOrder creates the query for an already parsed order.
func NewGetCustomerDataQueryForOrder(orderID kernel.OrderID) (GetCustomerDataQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCustomerDataQuery{}, err
	}

	return GetCustomerDataQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerDataQueryIsNotConstructed if validation fails.
func (q GetCustomerDataQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerDataQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetCustomerDataQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetCustomerDataQueryResponse is the autofill read model. Missing values are
// reported as "-".
type GetCustomerDataQueryResponse struct {
	Name     string
	Address  string
	Locality string
}
