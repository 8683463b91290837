package delivery

import (
	"errors"
	"fmt"

	"deliveryproof/internal/pkg/errs"
)

// Outcome is the user-visible result of a submission. Every terminal state
// maps to exactly one Outcome and each Outcome has exactly one message.
type Outcome int

const (
	OutcomeUnknown Outcome = iota

	// OutcomeRejected means the submission stopped before any notification
	// was attempted. Nothing was written to the ledger.
	OutcomeRejected

	// OutcomeDelivered means the customer was emailed and the ledger row was written.
	OutcomeDelivered

	// OutcomeDeliveredNotificationFailed means the email failed but the failure
	// was recorded in the ledger.
	OutcomeDeliveredNotificationFailed

	// OutcomeNotRecorded means the ledger row could not be written.
	OutcomeNotRecorded
)

// String returns the stable machine-readable code of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeDelivered:
		return "delivered"
	case OutcomeDeliveredNotificationFailed:
		return "delivered_notification_failed"
	case OutcomeNotRecorded:
		return "not_recorded"
	default:
		return "unknown"
	}
}

// User-facing messages shown to the operator.
const (
	MsgPhotoRequired         = "Debe adjuntar una imagen de la entrega."
	MsgOrderIDRequired       = "El ID del pedido es obligatorio."
	MsgOrderIDInvalid        = "ID de Pedido inválido. Debe ser un número."
	MsgDeliveredByTooLong    = "El nombre 'Entregado por' es demasiado largo (máx 255 caracteres)."
	MsgCommentTooLong        = "El comentario es demasiado largo (máx 1000 caracteres)."
	MsgDeliveredByInvalid    = "El nombre 'Entregado por' contiene caracteres no válidos."
	MsgCommentInvalid        = "El comentario contiene caracteres no válidos."
	MsgInvalidSubmission     = "Los datos de la entrega no son válidos."
	MsgOrderLookupFailed     = "No se pudo consultar el pedido en la base de datos. Inténtalo de nuevo."
	MsgPhotoStorageFailed    = "No se pudo guardar la imagen de la entrega. Inténtalo de nuevo."
	MsgPhotoProcessingFailed = "Hubo un problema al procesar la imagen. Inténtalo de nuevo."
	MsgDelivered             = "Correo enviado y entrega registrada correctamente."
	MsgNotRecorded           = "Error crítico: No se pudo registrar el estado de la entrega. Contacte a soporte."

	msgOrderNotFound               = "El pedido #%s no existe en la base de datos."
	msgDeliveredNotificationFailed = "Error al enviar el correo, pero entrega registrada con error. Detalle: %s"
)

// OrderNotFoundMessage returns the message for an order id with no matching order.
func OrderNotFoundMessage(orderID string) string {
	return fmt.Sprintf(msgOrderNotFound, orderID)
}

// NotificationFailedMessage returns the message for a delivery recorded with a
// failed email. detail is the recorded error.
func NotificationFailedMessage(detail string) string {
	return fmt.Sprintf(msgDeliveredNotificationFailed, detail)
}

// ValidationMessage picks the message for the first violated field, checking
// fields in form order: photo, order id, deliverer, comment.
func ValidationMessage(err error) string {
	violations := flatten(err)

	for _, field := range []string{FieldPhoto, FieldOrderID, FieldDeliveredBy, FieldComment} {
		for _, v := range violations {
			if msg, ok := messageFor(field, v); ok {
				return msg
			}
		}
	}

	return MsgInvalidSubmission
}

func messageFor(field string, err error) (string, bool) {
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &required) && required.ParamName == field:
		switch field {
		case FieldPhoto:
			return MsgPhotoRequired, true
		case FieldOrderID:
			return MsgOrderIDRequired, true
		}
	case errors.As(err, &invalid) && invalid.ParamName == field:
		switch field {
		case FieldOrderID:
			return MsgOrderIDInvalid, true
		case FieldDeliveredBy:
			return MsgDeliveredByInvalid, true
		case FieldComment:
			return MsgCommentInvalid, true
		}
	case errors.As(err, &outOfRange) && outOfRange.ParamName == field:
		switch field {
		case FieldDeliveredBy:
			return MsgDeliveredByTooLong, true
		case FieldComment:
			return MsgCommentTooLong, true
		}
	}

	return "", false
}

// flatten expands errors.Join trees into their leaves.
func flatten(err error) []error {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, flatten(e)...)
	}
	return out
}
