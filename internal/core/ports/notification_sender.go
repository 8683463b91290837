package ports

import (
	"context"
	"errors"
)

// ErrNotificationFailed is wrapped by NotificationSender implementations when
// the email could not be delivered to the relay.
var ErrNotificationFailed = errors.New("notification failed")

// NotificationSender delivers one email with one attachment.
type NotificationSender interface {
	// Send performs exactly one delivery attempt. The attachment is read from
	// attachmentPath and named after its base name.
	Send(ctx context.Context, recipient, subject, body, attachmentPath string) error
}
