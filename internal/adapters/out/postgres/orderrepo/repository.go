package orderrepo

import (
	"context"
	"fmt"

	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/core/domain/model/order"
	"deliveryproof/internal/core/ports"
	"deliveryproof/internal/pkg/errs"

	"gorm.io/gorm"
)

const findOrderSQL = `SELECT i.id, i.nombre, i.email, i.direccion, c.nombre AS comuna_nombre ` +
	`FROM impresiones i LEFT JOIN comunas c ON i.comuna = c.id WHERE i.id = ?`

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindOrder retrieves an order and its locality name by exact id.
func (r *GormOrderRepository) FindOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row orderRow
	result := r.db.WithContext(ctx).Raw(findOrderSQL, id.Int64()).Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrLookupFailed, result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("pedido_id", id.Int64())
	}

	return toDomain(row)
}
