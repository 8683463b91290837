package ports

import "deliveryproof/internal/core/domain/model/delivery"

// OutcomeRecorder counts workflow results. Implementations must be safe for
// concurrent use.
type OutcomeRecorder interface {
	RecordOutcome(outcome delivery.Outcome, reason string)
	RecordCritical()
}

// NopOutcomeRecorder discards every observation.
type NopOutcomeRecorder struct{}

func (NopOutcomeRecorder) RecordOutcome(delivery.Outcome, string) {}

func (NopOutcomeRecorder) RecordCritical() {}
