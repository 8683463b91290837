package delivery

import (
	"fmt"

	"deliveryproof/internal/pkg/errs"
)

// State is the position of a submission in the confirmation workflow.
//
// State transitions:
//
//	Received ──> Validated ──> PhotoStored ──> PhotoProcessed ──┬──> Notified ──────────┬──> Logged ──> Done
//	   │             │              │                           └──> NotificationFailed ┘       │
//	   └─────────────┴──────────────┴──> Rejected                       (ledger write failed) ──┴──> Done
//
// Done and Rejected are terminal. Rejected is only reachable before any
// notification was attempted, so a rejected submission never has a ledger row.
type State int

const (
	// Unknown represents an invalid or undefined state.
	Unknown State = iota

	// Received is the initial state of a submission.
	Received

	// Validated means the input passed validation and the order exists.
	Validated

	// PhotoStored means the raw upload was written to the upload directory.
	PhotoStored

	// PhotoProcessed means the stored photo was replaced by its normalized JPEG.
	PhotoProcessed

	// Notified means the confirmation email was sent.
	Notified

	// NotificationFailed means the email could not be sent.
	NotificationFailed

	// Logged means the ledger row was written.
	Logged

	// Done is the terminal state of a submission that reached the ledger stage.
	Done

	// Rejected is the terminal state of a submission stopped before notification.
	Rejected
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:            "Unknown",
		Received:           "Received",
		Validated:          "Validated",
		PhotoStored:        "PhotoStored",
		PhotoProcessed:     "PhotoProcessed",
		Notified:           "Notified",
		NotificationFailed: "NotificationFailed",
		Logged:             "Logged",
		Done:               "Done",
		Rejected:           "Rejected",
	}
}

//nolint:exhaustive // terminal states have no outgoing transitions
func getTransitions() map[State][]State {
	return map[State][]State{
		Received:           {Validated, Rejected},
		Validated:          {PhotoStored, Rejected},
		PhotoStored:        {PhotoProcessed, Rejected},
		PhotoProcessed:     {Notified, NotificationFailed},
		Notified:           {Logged, Done},
		NotificationFailed: {Logged, Done},
		Logged:             {Done},
	}
}

// Validate checks that s is one of the declared states.
func (s State) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	if _, ok := getStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// String returns the state name, "Unknown" for undeclared values.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return s == Done || s == Rejected
}

// TransitionTo returns next when the workflow allows moving from s to next.
func (s State) TransitionTo(next State) (State, error) {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return s, errs.NewValueIsInvalidErrorWithCause(
		"state transition is invalid",
		fmt.Errorf("%s cannot move to %s", s, next),
	)
}
