// Package kernel provides core domain primitives and utilities for the restaurant
// operations system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A fixed-point currency value object backed by integer cents
//   - TimeOfDay: A value object for local wall-clock times parsed from HH:MM strings
//   - Clock: An injectable time source so time-dependent decisions stay testable
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
