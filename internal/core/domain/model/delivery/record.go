package delivery

import (
	"errors"
	"strings"

	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/pkg/errs"
	"deliveryproof/internal/pkg/guard"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record was not created through NewRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// unknownNotificationError is stored when a notification failed with an
// error whose message is empty, so that a failed row never has an empty detail.
const unknownNotificationError = "unknown notification error"

// Record is one immutable ledger row describing the outcome of a submission
// that reached the ledger stage.
//
// Invariants:
//   - a notified record has an empty error detail
//   - a record whose notification failed has a non-empty error detail
type Record struct {
	orderID     kernel.OrderID
	deliveredAt string
	photoPath   string
	deliveredBy string
	comment     string
	notified    bool
	errorDetail string

	guard guard.ConstructorGuard
}

// NewRecord builds the ledger row for sub. notifyErr is the outcome of the
// notification attempt: nil means the customer was emailed.
func NewRecord(sub Submission, at Moment, photoPath string, notifyErr error) (Record, error) {
	if err := sub.Validate(); err != nil {
		return Record{}, err
	}
	if strings.TrimSpace(photoPath) == "" {
		return Record{}, errs.NewValueIsRequiredError("photo path")
	}

	r := Record{
		orderID:     sub.OrderID(),
		deliveredAt: at.Human(),
		photoPath:   photoPath,
		deliveredBy: sub.DeliveredBy(),
		comment:     sub.Comment(),
		notified:    notifyErr == nil,
		guard:       guard.NewConstructorGuard(),
	}

	if notifyErr != nil {
		r.errorDetail = notifyErr.Error()
		if strings.TrimSpace(r.errorDetail) == "" {
			r.errorDetail = unknownNotificationError
		}
	}

	return r, nil
}

// Validate ensures the record was created through NewRecord.
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// OrderID returns the delivered order.
func (r Record) OrderID() kernel.OrderID {
	return r.orderID
}

// DeliveredAt returns the human-readable delivery timestamp (dd/mm/yyyy HH:MM:SS).
func (r Record) DeliveredAt() string {
	return r.deliveredAt
}

// PhotoPath returns the stored photo reference.
func (r Record) PhotoPath() string {
	return r.photoPath
}

// DeliveredBy returns the deliverer name.
func (r Record) DeliveredBy() string {
	return r.deliveredBy
}

// Comment returns the operator comment.
func (r Record) Comment() string {
	return r.comment
}

// Notified reports whether the confirmation email was sent.
func (r Record) Notified() bool {
	return r.notified
}

// EmailSent returns Notified as the 0/1 flag stored in the ledger.
func (r Record) EmailSent() int {
	if r.notified {
		return 1
	}
	return 0
}

// ErrorDetail returns the notification failure cause, empty on success.
func (r Record) ErrorDetail() string {
	return r.errorDetail
}
