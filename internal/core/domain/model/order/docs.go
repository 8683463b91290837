// Package order provides the read-only Order entity of the proof-of-delivery
// service: the recipient and address data of a print order, looked up by its
// integer identifier.
//
// Orders are never created, changed or deleted here. "Order does not exist" is
// an expected outcome of a lookup and is reported with errs.ObjectNotFoundError
// by the repository, not as a failure.
package order
