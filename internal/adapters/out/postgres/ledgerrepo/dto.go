// Package ledgerrepo persists delivery records into the append-only
// entregas table.
package ledgerrepo

import "deliveryproof/internal/core/domain/model/delivery"

// EntregaDTO represents one ledger row.
type EntregaDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	PedidoID     int64  `gorm:"column:pedido_id;not null;index"`
	FechaEntrega string `gorm:"column:fecha_entrega;not null"`
	ArchivoFoto  string `gorm:"column:archivo_foto;not null"`
	EntregadoPor string `gorm:"column:entregado_por;not null"`
	Comentario   string `gorm:"column:comentario;not null"`
	EmailEnviado int16  `gorm:"column:email_enviado;type:smallint;not null"`
	ErrorEnvio   string `gorm:"column:error_envio;not null"`
}

// TableName specifies the database table name for delivery records.
func (EntregaDTO) TableName() string {
	return "entregas"
}

// fromDomain converts a delivery record to its database representation.
func fromDomain(rec delivery.Record) EntregaDTO {
	return EntregaDTO{
		PedidoID:     rec.OrderID().Int64(),
		FechaEntrega: rec.DeliveredAt(),
		ArchivoFoto:  rec.PhotoPath(),
		EntregadoPor: rec.DeliveredBy(),
		Comentario:   rec.Comment(),
		EmailEnviado: int16(rec.EmailSent()),
		ErrorEnvio:   rec.ErrorDetail(),
	}
}
