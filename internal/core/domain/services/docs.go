// Package services provides domain services that implement business logic
// spanning multiple value objects rather than belonging to a single
// aggregate root.
//
// The package includes:
//   - FeeCalculator: evaluates a delivery-fee rule set against the facts of
//     an order to produce an itemized breakdown
//
// Domain services here are pure: deterministic, stateless and free of I/O,
// following Domain-Driven Design principles.
package services
