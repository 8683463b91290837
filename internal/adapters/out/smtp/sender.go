// Package smtp delivers customer notifications through an authenticated SMTP
// relay using wneessen/go-mail.
package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deliveryproof/internal/core/ports"

	"github.com/wneessen/go-mail"
)

// TLS modes accepted in Config.TLS.
const (
	TLSMandatory     = "mandatory"
	TLSOpportunistic = "opportunistic"
	TLSNone          = "none"
	TLSImplicit      = "ssl"
)

const attachmentContentType = mail.ContentType("image/jpeg")

// Config holds the relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      string
	Timeout  time.Duration
}

// Sender implements ports.NotificationSender. Every Send opens and closes
// its own SMTP session.
type Sender struct {
	cfg    Config
	logger *slog.Logger
}

// NewSender validates cfg and creates a sender.
func NewSender(cfg Config, logger *slog.Logger) (*Sender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, fmt.Errorf("smtp sender address is required")
	}
	if _, err := tlsOptions(cfg.TLS); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Sender{
		cfg:    cfg,
		logger: logger.With("component", "smtp_sender"),
	}, nil
}

// Send delivers one plain-text email with the JPEG at attachmentPath attached.
// There is exactly one attempt. Closing the session never changes the result.
func (s *Sender) Send(ctx context.Context, recipient, subject, body, attachmentPath string) error {
	msg, err := s.message(recipient, subject, body, attachmentPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrNotificationFailed, err)
	}

	client, err := s.client()
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrNotificationFailed, err)
	}

	if err = client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("%w: dial: %w", ports.ErrNotificationFailed, err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			s.logger.WarnContext(ctx, "Failed to close SMTP session", "error", closeErr)
		}
	}()

	if err = client.Send(msg); err != nil {
		return fmt.Errorf("%w: send: %w", ports.ErrNotificationFailed, err)
	}

	s.logger.InfoContext(ctx, "Delivery notification sent", "recipient", recipient, "subject", subject)
	return nil
}

func (s *Sender) message(recipient, subject, body, attachmentPath string) (*mail.Msg, error) {
	if _, err := os.Stat(attachmentPath); err != nil {
		return nil, fmt.Errorf("attachment: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	msg.AttachFile(attachmentPath,
		mail.WithFileName(filepath.Base(attachmentPath)),
		mail.WithFileContentType(attachmentContentType),
	)

	return msg, nil
}

func (s *Sender) client() (*mail.Client, error) {
	opts, err := tlsOptions(s.cfg.TLS)
	if err != nil {
		return nil, err
	}

	if s.cfg.Port > 0 {
		opts = append(opts, mail.WithPort(s.cfg.Port))
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	return mail.NewClient(s.cfg.Host, opts...)
}

func tlsOptions(mode string) ([]mail.Option, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", TLSMandatory:
		return []mail.Option{mail.WithTLSPolicy(mail.TLSMandatory)}, nil
	case TLSOpportunistic:
		return []mail.Option{mail.WithTLSPolicy(mail.TLSOpportunistic)}, nil
	case TLSNone:
		return []mail.Option{mail.WithTLSPolicy(mail.NoTLS)}, nil
	case TLSImplicit:
		return []mail.Option{mail.WithSSL()}, nil
	default:
		return nil, fmt.Errorf("unknown smtp tls mode %q", mode)
	}
}
