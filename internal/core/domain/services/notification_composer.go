package services

import (
	"fmt"
	"strings"

	"deliveryproof/internal/core/domain/model/delivery"
	"deliveryproof/internal/core/domain/model/order"
	"deliveryproof/internal/pkg/errs"
)

const (
	subjectTemplate = "Pedido %s Entregado"

	bodyTemplate = `Hola %s,

Queremos contarte que tu pedido número %s ha sido entregado con éxito el día %s.

Adjuntamos una imagen como respaldo de la entrega.

Gracias por preferirnos.

Un saludo afectuoso,
Equipo de Repartos
PrinterExpress Spa`
)

// Notification is a composed customer email, ready to be handed to a sender.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// NotificationComposer is a domain service that renders the delivery
// confirmation sent to the customer.
//
// Business rules:
//   - the subject names the order: "Pedido {id} Entregado"
//   - the body greets the recipient by name and states the delivery timestamp
//     in dd/mm/yyyy HH:MM:SS form, the same value written to the ledger
//   - an order without a recipient email cannot be notified
//
// Example usage:
//
//	composer := services.NewNotificationComposer()
//	n, err := composer.Compose(o, delivery.NewMoment(clock.Now()))
//	if err != nil {
//	    // recorded as a notification failure, the delivery is still logged
//	}
//	err = sender.Send(ctx, n.Recipient, n.Subject, n.Body, photoPath)
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// Compose renders the confirmation email for o delivered at m.
//
// Returns:
//   - Notification: recipient, subject and plain-text body
//   - error: the order validation error, or errs.ValueIsRequiredError when the
//     order has no recipient email
func (NotificationComposer) Compose(o *order.Order, m delivery.Moment) (Notification, error) {
	if err := o.Validate(); err != nil {
		return Notification{}, err
	}

	recipient := strings.TrimSpace(o.RecipientEmail())
	if recipient == "" {
		return Notification{}, errs.NewValueIsRequiredError("recipient email")
	}

	id := o.ID().String()

	return Notification{
		Recipient: recipient,
		Subject:   fmt.Sprintf(subjectTemplate, id),
		Body:      fmt.Sprintf(bodyTemplate, o.RecipientName(), id, m.Human()),
	}, nil
}
