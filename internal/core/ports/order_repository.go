// Package ports defines the contracts between the delivery confirmation
// workflow and the infrastructure it drives. Adapters wrap their causes with
// the sentinel errors declared here so that the application layer can tell
// failure classes apart with errors.Is.
package ports

import (
	"context"
	"errors"

	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/core/domain/model/order"
)

// ErrLookupFailed is wrapped by OrderRepository implementations when the
// order store could not be queried. It is distinct from errs.ErrObjectNotFound.
var ErrLookupFailed = errors.New("order lookup failed")

// OrderRepository is the read-only view of the externally owned order store.
type OrderRepository interface {
	// FindOrder returns the order with the exact identifier id, including its
	// locality name resolved from the locality table.
	//
	// Errors:
	//   - *errs.ObjectNotFoundError when no order matches
	//   - an error wrapping ErrLookupFailed on connectivity or query failure
	//
	// Example:
	//   o, err := repo.FindOrder(ctx, id)
	//   switch {
	//   case errors.Is(err, errs.ErrObjectNotFound):
	//       // unknown order, reject the submission
	//   case err != nil:
	//       // database unavailable
	//   }
	FindOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
