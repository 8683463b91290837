package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"deliveryproof/internal/core/domain/model/delivery"
	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/core/domain/model/order"
	"deliveryproof/internal/core/domain/services"
	"deliveryproof/internal/core/ports"
	"deliveryproof/internal/pkg/errs"
	"deliveryproof/internal/pkg/logging"
)

// Rejection causes returned by ConfirmDeliveryCommandHandler.Handle.
var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderLookupFailed     = errors.New("order lookup failed")
	ErrPhotoStorageFailed    = errors.New("photo storage failed")
	ErrPhotoProcessingFailed = errors.New("photo processing failed")
)

// Stable result codes, one per terminal situation.
const (
	CodeValidationFailed            = "validation_failed"
	CodeOrderNotFound               = "order_not_found"
	CodeOrderLookupFailed           = "order_lookup_failed"
	CodePhotoStorageFailed          = "photo_storage_failed"
	CodeImageProcessingFailed       = "image_processing_failed"
	CodeDelivered                   = "delivered"
	CodeDeliveredNotificationFailed = "delivered_notification_failed"
	CodeNotRecorded                 = "not_recorded"
)

// ConfirmDeliveryDeps groups the collaborators of the delivery workflow.
// Archive, Metrics and Logger are optional.
type ConfirmDeliveryDeps struct {
	Orders  ports.OrderRepository
	Photos  ports.PhotoStore
	Images  ports.ImageProcessor
	Sender  ports.NotificationSender
	Ledger  ports.DeliveryLedger
	Clock   ports.Clock
	Archive ports.PhotoArchive
	Metrics ports.OutcomeRecorder
	Logger  *slog.Logger
}

// ConfirmDeliveryResult describes what happened to one submission.
type ConfirmDeliveryResult struct {
	SubmissionID kernel.UUID
	OrderID      kernel.OrderID
	State        delivery.State
	Outcome      delivery.Outcome
	Code         string
	Message      string
	PhotoPath    string

	// NotificationErr is the email failure, nil when the customer was notified
	// or the workflow stopped before notifying.
	NotificationErr error

	// LedgerErr is set when the outcome is delivery.OutcomeNotRecorded.
	LedgerErr error
}

// ConfirmDeliveryCommandHandler runs the delivery confirmation workflow:
// lookup, store photo, process photo, archive, notify and record.
//
// Only rejections are returned as errors. Once the photo is processed the
// remaining steps ignore request cancellation, the handler writes at most one
// ledger row and reports the outcome in the result, including email and
// ledger failures.
//
// Example:
//
//	handler, _ := NewConfirmDeliveryCommandHandler(ConfirmDeliveryDeps{
//	    Orders: orderRepo, Photos: store, Images: processor,
//	    Sender: mailer, Ledger: ledger, Clock: clock, Logger: logger,
//	})
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404
//	case err != nil:
//	    // other rejection
//	case res.Outcome == delivery.OutcomeNotRecorded:
//	    // audit row lost, operator must contact support
//	}
type ConfirmDeliveryCommandHandler struct {
	orders   ports.OrderRepository
	photos   ports.PhotoStore
	images   ports.ImageProcessor
	sender   ports.NotificationSender
	ledger   ports.DeliveryLedger
	clock    ports.Clock
	archive  ports.PhotoArchive
	metrics  ports.OutcomeRecorder
	composer services.NotificationComposer
	logger   *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates the workflow handler. All ports
// except Archive and Metrics are required.
func NewConfirmDeliveryCommandHandler(deps ConfirmDeliveryDeps) (*ConfirmDeliveryCommandHandler, error) {
	if err := errors.Join(
		required(deps.Orders == nil, "orders"),
		required(deps.Photos == nil, "photos"),
		required(deps.Images == nil, "images"),
		required(deps.Sender == nil, "sender"),
		required(deps.Ledger == nil, "ledger"),
		required(deps.Clock == nil, "clock"),
	); err != nil {
		return nil, err
	}

	h := &ConfirmDeliveryCommandHandler{
		orders:   deps.Orders,
		photos:   deps.Photos,
		images:   deps.Images,
		sender:   deps.Sender,
		ledger:   deps.Ledger,
		clock:    deps.Clock,
		archive:  deps.Archive,
		metrics:  deps.Metrics,
		composer: services.NewNotificationComposer(),
		logger:   deps.Logger,
	}
	if h.metrics == nil {
		h.metrics = ports.NopOutcomeRecorder{}
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	h.logger = h.logger.With("component", "confirm_delivery")

	return h, nil
}

func required(missing bool, name string) error {
	if missing {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Handle processes one submission.
//
// Returns a non-nil error only when the submission is rejected; the error then
// wraps one of ErrSubmissionIsInvalid, ErrOrderNotFound, ErrOrderLookupFailed,
// ErrPhotoStorageFailed or ErrPhotoProcessingFailed. The result is always
// populated.
func (h *ConfirmDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmDeliveryCommand,
) (ConfirmDeliveryResult, error) {
	res := ConfirmDeliveryResult{State: delivery.Received}

	if err := cmd.Validate(); err != nil {
		return h.reject(ctx, h.logger, &res, fmt.Errorf("%w: %w", ErrSubmissionIsInvalid, err),
			CodeValidationFailed, delivery.ValidationMessage(err))
	}

	sub := cmd.Submission()
	res.SubmissionID = sub.ID()
	res.OrderID = sub.OrderID()
	log := h.logger.With("submission_id", sub.ID().String(), "order_id", sub.OrderID().String())

	o, err := h.orders.FindOrder(ctx, sub.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return h.reject(ctx, log, &res, fmt.Errorf("%w: %w", ErrOrderNotFound, err),
				CodeOrderNotFound, delivery.OrderNotFoundMessage(sub.OrderID().String()))
		}
		return h.reject(ctx, log, &res, fmt.Errorf("%w: %w", ErrOrderLookupFailed, err),
			CodeOrderLookupFailed, delivery.MsgOrderLookupFailed)
	}
	h.advance(ctx, log, &res, delivery.Validated)

	at := delivery.NewMoment(h.clock.Now())

	path, err := h.photos.Save(ctx, delivery.PhotoFileName(sub.OrderID(), at), sub.Photo())
	if err != nil {
		return h.reject(ctx, log, &res, fmt.Errorf("%w: %w", ErrPhotoStorageFailed, err),
			CodePhotoStorageFailed, delivery.MsgPhotoStorageFailed)
	}
	res.PhotoPath = path
	h.advance(ctx, log, &res, delivery.PhotoStored)

	if err = h.images.Process(ctx, sub.Photo(), path); err != nil {
		if rmErr := h.photos.Remove(ctx, path); rmErr != nil {
			log.ErrorContext(ctx, "Failed to remove unprocessed photo", "path", path, "error", rmErr)
		}
		res.PhotoPath = ""
		return h.reject(ctx, log, &res, fmt.Errorf("%w: %w", ErrPhotoProcessingFailed, err),
			CodeImageProcessingFailed, delivery.MsgPhotoProcessingFailed)
	}
	h.advance(ctx, log, &res, delivery.PhotoProcessed)

	// The photo is on disk: the client leaving must not stop the email or
	// the ledger row.
	ctx = context.WithoutCancel(ctx)

	h.archivePhoto(ctx, log, path)

	res.NotificationErr = h.notify(ctx, o, at, path)
	if res.NotificationErr != nil {
		log.WarnContext(ctx, "Delivery notification failed", "error", res.NotificationErr)
		h.advance(ctx, log, &res, delivery.NotificationFailed)
	} else {
		h.advance(ctx, log, &res, delivery.Notified)
	}

	h.record(ctx, log, &res, sub, at, path)

	return res, nil
}

// RejectInvalid reports a submission whose command could not be built, so
// that malformed input is logged and counted like any other rejection. err is
// the error returned by NewConfirmDeliveryCommand.
func (h *ConfirmDeliveryCommandHandler) RejectInvalid(ctx context.Context, err error) ConfirmDeliveryResult {
	res := ConfirmDeliveryResult{State: delivery.Received}
	if !errors.Is(err, ErrSubmissionIsInvalid) {
		err = fmt.Errorf("%w: %w", ErrSubmissionIsInvalid, err)
	}

	res, _ = h.reject(ctx, h.logger, &res, err, CodeValidationFailed, delivery.ValidationMessage(err))
	return res
}

// notify composes and sends the confirmation email. A composition failure,
// such as a missing recipient, counts as a notification failure.
func (h *ConfirmDeliveryCommandHandler) notify(
	ctx context.Context,
	o *order.Order,
	at delivery.Moment,
	path string,
) error {
	n, err := h.composer.Compose(o, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrNotificationFailed, err)
	}

	return h.sender.Send(ctx, n.Recipient, n.Subject, n.Body, path)
}

// record appends the ledger row and settles the outcome. When the customer was
// notified a failed append is retried once, since the email cannot be taken
// back.
func (h *ConfirmDeliveryCommandHandler) record(
	ctx context.Context,
	log *slog.Logger,
	res *ConfirmDeliveryResult,
	sub delivery.Submission,
	at delivery.Moment,
	path string,
) {
	rec, err := delivery.NewRecord(sub, at, path, res.NotificationErr)
	if err == nil {
		err = h.ledger.Append(ctx, rec)
		if err != nil && res.NotificationErr == nil {
			log.WarnContext(ctx, "Ledger append failed, retrying once", "error", err)
			err = h.ledger.Append(ctx, rec)
		}
	}

	if err != nil {
		res.LedgerErr = err
		res.Outcome = delivery.OutcomeNotRecorded
		res.Code = CodeNotRecorded
		res.Message = delivery.MsgNotRecorded
		h.advance(ctx, log, res, delivery.Done)

		if res.NotificationErr != nil {
			logging.Critical(ctx, log, "Delivery was neither notified nor recorded",
				"notification_error", res.NotificationErr, "ledger_error", err)
			h.metrics.RecordCritical()
		} else {
			log.ErrorContext(ctx, "Delivery was notified but not recorded", "error", err)
		}
		h.metrics.RecordOutcome(res.Outcome, res.Code)
		return
	}

	h.advance(ctx, log, res, delivery.Logged)
	h.advance(ctx, log, res, delivery.Done)

	if res.NotificationErr != nil {
		res.Outcome = delivery.OutcomeDeliveredNotificationFailed
		res.Code = CodeDeliveredNotificationFailed
		res.Message = delivery.NotificationFailedMessage(rec.ErrorDetail())
	} else {
		res.Outcome = delivery.OutcomeDelivered
		res.Code = CodeDelivered
		res.Message = delivery.MsgDelivered
	}

	log.InfoContext(ctx, "Delivery recorded", "outcome", res.Outcome.String(), "photo", path)
	h.metrics.RecordOutcome(res.Outcome, res.Code)
}

func (h *ConfirmDeliveryCommandHandler) archivePhoto(ctx context.Context, log *slog.Logger, path string) {
	if h.archive == nil {
		return
	}
	if err := h.archive.Archive(ctx, path); err != nil {
		log.WarnContext(ctx, "Photo archive failed", "path", path, "error", err)
	}
}

func (h *ConfirmDeliveryCommandHandler) reject(
	ctx context.Context,
	log *slog.Logger,
	res *ConfirmDeliveryResult,
	err error,
	code, message string,
) (ConfirmDeliveryResult, error) {
	h.advance(ctx, log, res, delivery.Rejected)
	res.Outcome = delivery.OutcomeRejected
	res.Code = code
	res.Message = message

	log.InfoContext(ctx, "Delivery submission rejected", "code", code, "error", err)
	h.metrics.RecordOutcome(res.Outcome, code)

	return *res, err
}

func (h *ConfirmDeliveryCommandHandler) advance(
	ctx context.Context,
	log *slog.Logger,
	res *ConfirmDeliveryResult,
	next delivery.State,
) {
	state, err := res.State.TransitionTo(next)
	if err != nil {
		log.ErrorContext(ctx, "Unexpected delivery state transition", "error", err)
		return
	}
	res.State = state
}
