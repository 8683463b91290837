// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries detect whether they were created through their
// constructor or used as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when the caller does not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose invariants are established by a
// constructor. A zero-value guard fails validation.
//
// Example usage:
//
//	var ErrSubmissionIsNotConstructed = errors.New("Submission must be created via NewSubmission")
//
//	type Submission struct {
//	    orderID kernel.OrderID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (s Submission) Validate() error {
//	    return s.guard.Validate(ErrSubmissionIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created by NewConstructorGuard.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
