package order

import (
	"errors"
	"strings"

	"deliveryproof/internal/core/domain/model/kernel"
)

// Placeholder is shown instead of a customer field that is absent in the
// order system, including a locality whose lookup did not resolve.
const Placeholder = "-"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// RestoreOrder. This ensures all orders read from storage are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// Order is the delivery-relevant view of a print order. Orders are created
// and owned by the shop's order system; this service only reads them.
//
// Order follows these invariants:
//   - Must have a valid positive identifier
//   - Name, address and locality are never empty (Placeholder stands in for missing data)
//   - Email is kept verbatim; an unusable address surfaces later as a notification failure
type Order struct {
	// id is the externally assigned order number
	id kernel.OrderID

	// recipientName is the customer's name as registered on the order
	recipientName string

	// recipientEmail is where the delivery confirmation is sent
	recipientEmail string

	// address is the delivery street address
	address string

	// locality is the resolved locality (comuna) name
	locality string

	// isConstructed ensures the order was created via RestoreOrder
	isConstructed bool
}

// RestoreOrder rebuilds an Order from stored data.
//
// Example:
//
//	id, _ := kernel.NewOrderID(1024)
//	o, err := order.RestoreOrder(id, "Jane", "a@example.com", "Av. Siempre Viva 742", "")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Locality()) // "-"
func RestoreOrder(id kernel.OrderID, name, email, address, locality string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		recipientName:  orPlaceholder(name),
		recipientEmail: strings.TrimSpace(email),
		address:        orPlaceholder(address),
		locality:       orPlaceholder(locality),
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order number.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// RecipientName returns the customer's name.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// RecipientEmail returns the customer's email address, possibly empty.
func (o *Order) RecipientEmail() string {
	return o.recipientEmail
}

// Address returns the delivery street address.
func (o *Order) Address() string {
	return o.address
}

// Locality returns the locality name, or Placeholder when it did not resolve.
func (o *Order) Locality() string {
	return o.locality
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return Placeholder
	}
	return s
}
