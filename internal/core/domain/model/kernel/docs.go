// Package kernel provides the shared value objects of the proof-of-delivery domain.
//
// The package includes:
//   - OrderID: the positive integer identifier of a print order
//   - UUID: a per-submission correlation identifier
//   - SystemClock and LoadZone: zone-aware wall-clock time for delivery timestamps
//
// Value objects are immutable and reject their zero value in Validate, so a
// value that skipped its constructor is caught before it reaches a port.
package kernel
