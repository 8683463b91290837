package ledgerrepo

import (
	"context"
	"fmt"

	"deliveryproof/internal/core/domain/model/delivery"
	"deliveryproof/internal/core/ports"

	"gorm.io/gorm"
)

// GormDeliveryLedger implements ports.DeliveryLedger using GORM.
type GormDeliveryLedger struct {
	db *gorm.DB
}

// NewGormDeliveryLedger creates a new GORM delivery ledger.
func NewGormDeliveryLedger(db *gorm.DB) *GormDeliveryLedger {
	return &GormDeliveryLedger{db: db}
}

// Append inserts rec as a new row.
func (l *GormDeliveryLedger) Append(ctx context.Context, rec delivery.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrLedgerWriteFailed, err)
	}

	dto := fromDomain(rec)
	if err := l.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("%w: %w", ports.ErrLedgerWriteFailed, err)
	}

	return nil
}
