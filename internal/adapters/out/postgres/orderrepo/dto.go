// Package orderrepo reads orders from the externally owned order tables.
// The tables are never written by this service; the DTOs describe their shape
// for reads and for schema setup in tests.
package orderrepo

import (
	"database/sql"

	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/core/domain/model/order"
)

// ImpresionDTO is a row of the print order table.
type ImpresionDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false"`
	Nombre    sql.NullString
	Email     sql.NullString
	Direccion sql.NullString
	Comuna    sql.NullInt64
}

// TableName specifies the database table name for print orders.
func (ImpresionDTO) TableName() string {
	return "impresiones"
}

// ComunaDTO is a row of the locality lookup table.
type ComunaDTO struct {
	ID     int64 `gorm:"primaryKey"`
	Nombre string
}

// TableName specifies the database table name for localities.
func (ComunaDTO) TableName() string {
	return "comunas"
}

// orderRow is the joined read model returned by findOrderSQL.
type orderRow struct {
	ID           int64
	Nombre       sql.NullString
	Email        sql.NullString
	Direccion    sql.NullString
	ComunaNombre sql.NullString
}

// toDomain converts a joined row to an order. Placeholders for missing values
// are applied by order.RestoreOrder.
func toDomain(row orderRow) (*order.Order, error) {
	id, err := kernel.NewOrderID(row.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, row.Nombre.String, row.Email.String, row.Direccion.String, row.ComunaNombre.String)
}
