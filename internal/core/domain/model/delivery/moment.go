package delivery

import (
	"fmt"
	"time"

	"deliveryproof/internal/core/domain/model/kernel"
)

const (
	humanLayout   = "02/01/2006 15:04:05"
	compactLayout = "20060102150405"
)

// Moment is the instant a delivery photo was received, in the shop's zone.
// It provides the two renderings the workflow needs: a human-readable one for
// the ledger and the email, and a compact one for file names.
type Moment struct {
	at time.Time
}

// NewMoment wraps t. The zone of t is kept as is; callers obtain t from a
// zone-aware clock.
func NewMoment(t time.Time) Moment {
	return Moment{at: t}
}

// Time returns the wrapped instant.
func (m Moment) Time() time.Time {
	return m.at
}

// Human renders the moment as dd/mm/yyyy HH:MM:SS.
func (m Moment) Human() string {
	return m.at.Format(humanLayout)
}

// Compact renders the moment as YYYYMMDDHHMMSS.
func (m Moment) Compact() string {
	return m.at.Format(compactLayout)
}

// PhotoFileName returns the deterministic name of the stored delivery photo,
// entrega_{orderId}_{YYYYMMDDHHMMSS}.jpg. Two submissions for the same order
// within the same second produce the same name.
func PhotoFileName(orderID kernel.OrderID, m Moment) string {
	return fmt.Sprintf("entrega_%s_%s.jpg", orderID.String(), m.Compact())
}
