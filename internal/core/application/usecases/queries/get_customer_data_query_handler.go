package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"deliveryproof/internal/core/domain/model/order"
	"deliveryproof/internal/core/ports"
	"deliveryproof/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerDataQueryHandler reads customer data straight from the order
// tables. Uses a direct SQL query for read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetCustomerDataQueryHandler(db)
//	query, _ := NewGetCustomerDataQuery("1024")
//
//	data, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get customer data: %v", err)
//	    return err
//	}
type GetCustomerDataQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerDataQueryHandler creates a handler for customer data queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerDataQueryHandler(db *gorm.DB) GetCustomerDataQueryHandler {
	return GetCustomerDataQueryHandler{db: db}
}

// Handle returns the customer data of the requested order.
//
// Errors:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - an error wrapping ports.ErrLookupFailed when the query fails
func (h GetCustomerDataQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerDataQuery,
) (GetCustomerDataQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerDataQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.nombre,
			i.direccion,
			c.nombre AS comuna_nombre
		FROM impresiones i
		LEFT JOIN comunas c ON i.comuna = c.id
		WHERE i.id = ?
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return GetCustomerDataQueryResponse{}, fmt.Errorf("%w: %w", ports.ErrLookupFailed, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCustomerDataQueryResponse{}, fmt.Errorf("%w: %w", ports.ErrLookupFailed, err)
		}
		return GetCustomerDataQueryResponse{}, errs.NewObjectNotFoundError("pedido_id", query.OrderID().Int64())
	}

	var name, address, locality sql.NullString
	if err = rows.Scan(&name, &address, &locality); err != nil {
		return GetCustomerDataQueryResponse{}, fmt.Errorf("%w: %w", ports.ErrLookupFailed, err)
	}

	return GetCustomerDataQueryResponse{
		Name:     orPlaceholder(name),
		Address:  orPlaceholder(address),
		Locality: orPlaceholder(locality),
	}, nil
}

func orPlaceholder(s sql.NullString) string {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return order.Placeholder
	}
	return s.String
}
