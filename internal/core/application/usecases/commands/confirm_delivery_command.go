// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Commands are validated on construction; handlers never receive invalid input.
package commands

import (
	"errors"
	"fmt"

	"deliveryproof/internal/core/domain/model/delivery"
	"deliveryproof/internal/core/domain/model/kernel"
	"deliveryproof/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrSubmissionIsInvalid = errors.New("delivery submission is invalid")
)

// ConfirmDeliveryCommand represents an operator confirming that an order was
// handed over, with a photo as proof.
//
// Example:
//
//	cmd, err := NewConfirmDeliveryCommand(kernel.NewUUID(), "1024", "Carlos", "ok", photo)
//	if err != nil {
//	    fmt.Println(delivery.ValidationMessage(err))
//	    return
//	}
//
//	res, err := handler.Handle(ctx, cmd)
//	fmt.Println(res.Outcome, res.Message)
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	submission delivery.Submission

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand validates raw form input. Every violation is
// reported in one error that wraps ErrSubmissionIsInvalid and the individual
// errs validation errors.
func NewConfirmDeliveryCommand(
	submissionID kernel.UUID,
	rawOrderID, deliveredBy, comment string,
	photo []byte,
) (ConfirmDeliveryCommand, error) {
	sub, err := delivery.NewSubmission(submissionID, rawOrderID, deliveredBy, comment, photo)
	if err != nil {
		return ConfirmDeliveryCommand{}, fmt.Errorf("%w: %w", ErrSubmissionIsInvalid, err)
	}

	return ConfirmDeliveryCommand{
		submission: sub,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// Submission returns the validated operator input.
func (c ConfirmDeliveryCommand) Submission() delivery.Submission {
	return c.submission
}
