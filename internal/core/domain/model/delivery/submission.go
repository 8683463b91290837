package delivery

import (
	"errors"
	"strings"
	"unicode/utf8"

	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/pkg/errs"
	"deliveryproof/internal/pkg/guard"
)

const (
	// DefaultDeliveredBy is recorded when the operator leaves the deliverer blank.
	DefaultDeliveredBy = "PrinterExpress"

	// DefaultComment is recorded when the operator leaves the comment blank.
	DefaultComment = "Entregado"

	// MaxDeliveredByLength is the maximum deliverer name length in characters.
	MaxDeliveredByLength = 255

	// MaxCommentLength is the maximum comment length in characters.
	MaxCommentLength = 1000
)

// Field names of the inbound form, also used as ParamName in validation errors.
const (
	FieldOrderID     = "pedido_id"
	FieldDeliveredBy = "entregado_por"
	FieldComment     = "comentario"
	FieldPhoto       = "imagen"
)

var (
	// ErrSubmissionIsNotConstructed is returned when a Submission was not created
	// through NewSubmission.
	ErrSubmissionIsNotConstructed = errors.New("Submission must be created via NewSubmission constructor")
)

// Submission is one operator request to confirm a delivery. It lives only for
// the duration of the request and is never persisted as such.
//
// Invariants, all checked by NewSubmission before any I/O happens:
//   - the photo is not empty
//   - the order identifier is a positive integer
//   - the deliverer name has at most MaxDeliveredByLength characters
//   - the comment has at most MaxCommentLength characters
//   - deliverer name and comment are valid UTF-8 without NUL bytes
type Submission struct {
	id          kernel.UUID
	orderID     kernel.OrderID
	deliveredBy string
	comment     string
	photo       []byte

	guard guard.ConstructorGuard
}

// NewSubmission validates raw form input. Blank deliverer and comment fall back
// to DefaultDeliveredBy and DefaultComment. All violations are reported
// together via errors.Join.
//
// Example:
//
//	sub, err := delivery.NewSubmission(kernel.NewUUID(), "1024", "Carlos", "ok", photo)
//	if err != nil {
//	    return err // errs.IsValidation(err) == true
//	}
func NewSubmission(id kernel.UUID, rawOrderID, deliveredBy, comment string, photo []byte) (Submission, error) {
	s := Submission{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setPhoto(photo),
		s.setOrderID(rawOrderID),
		s.setDeliveredBy(deliveredBy),
		s.setComment(comment),
		s.setID(id),
	); err != nil {
		return Submission{}, err
	}

	return s, nil
}

// Validate ensures the submission was created through NewSubmission.
func (s Submission) Validate() error {
	return s.guard.Validate(ErrSubmissionIsNotConstructed)
}

// ID returns the correlation identifier of this submission.
func (s Submission) ID() kernel.UUID {
	return s.id
}

// OrderID returns the order being confirmed.
func (s Submission) OrderID() kernel.OrderID {
	return s.orderID
}

// DeliveredBy returns the deliverer name, defaulted when blank.
func (s Submission) DeliveredBy() string {
	return s.deliveredBy
}

// Comment returns the operator comment, defaulted when blank.
func (s Submission) Comment() string {
	return s.comment
}

// Photo returns the raw uploaded bytes.
func (s Submission) Photo() []byte {
	return s.photo
}

func (s *Submission) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Submission) setPhoto(photo []byte) error {
	if len(photo) == 0 {
		return errs.NewValueIsRequiredError(FieldPhoto)
	}
	s.photo = photo
	return nil
}

func (s *Submission) setOrderID(raw string) error {
	id, err := kernel.ParseOrderID(raw)
	if err != nil {
		return err
	}
	s.orderID = id
	return nil
}

func (s *Submission) setDeliveredBy(deliveredBy string) error {
	if strings.TrimSpace(deliveredBy) == "" {
		deliveredBy = DefaultDeliveredBy
	}
	if err := checkText(FieldDeliveredBy, deliveredBy); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(deliveredBy); n > MaxDeliveredByLength {
		return errs.NewValueIsOutOfRangeError(FieldDeliveredBy, n, 1, MaxDeliveredByLength)
	}
	s.deliveredBy = deliveredBy
	return nil
}

func (s *Submission) setComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		comment = DefaultComment
	}
	if err := checkText(FieldComment, comment); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(comment); n > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError(FieldComment, n, 1, MaxCommentLength)
	}
	s.comment = comment
	return nil
}

// checkText rejects text that a Postgres text column cannot store.
func checkText(field, value string) error {
	if !utf8.ValidString(value) {
		return errs.NewValueIsInvalidErrorWithCause(field, errors.New("not valid UTF-8"))
	}
	if strings.ContainsRune(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(field, errors.New("contains a NUL character"))
	}
	return nil
}
