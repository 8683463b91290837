package ports

import (
	"context"
	"errors"

	"deliveryproof/internal/core/domain/model/delivery"
)

// ErrLedgerWriteFailed is wrapped by DeliveryLedger implementations when the
// record could not be persisted.
var ErrLedgerWriteFailed = errors.New("ledger write failed")

// DeliveryLedger is the append-only audit log of delivery outcomes.
type DeliveryLedger interface {
	// Append stores rec as a new row. Rows are never updated.
	Append(ctx context.Context, rec delivery.Record) error
}
