// Package services provides domain services that combine several domain
// objects into one business operation that belongs to none of them.
//
// The package includes:
//   - NotificationComposer: builds the customer delivery confirmation email
//     from an order and the delivery moment
package services
