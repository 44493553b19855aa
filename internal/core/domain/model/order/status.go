package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions (role-gated, see transitions.go):
//
//	received ──> preparing ──> ready ──┬──> assigned ──> enroute ──> completed   (delivery)
//	                                   └──> completed                            (pickup)
//	any non-terminal ──> cancelled
//
// An order is created in received and is terminal at completed or cancelled;
// no transitions are legal out of a terminal state.
//
// Status is a value object that validates state transitions and provides
// stable lowercase string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusReceived is the initial status when an order arrives from the
	// ordering channel and is waiting for the kitchen to accept it.
	StatusReceived

	// StatusPreparing indicates the kitchen is working on the order.
	StatusPreparing

	// StatusReady indicates the order is prepared and waiting for handoff:
	// courier assignment for delivery orders, customer pickup otherwise.
	StatusReady

	// StatusAssigned indicates a courier has been assigned.
	// Only reachable for delivery orders.
	StatusAssigned

	// StatusEnroute indicates the courier is on the way to the customer.
	// Only reachable for delivery orders.
	StatusEnroute

	// StatusCompleted indicates the order was fulfilled.
	// This is a terminal state with no further transitions allowed.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled.
	// This is a terminal state with no further transitions allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusReceived:  "received",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusAssigned:  "assigned",
		StatusEnroute:   "enroute",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusReceived:  "received",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusAssigned:  "assigned",
		StatusEnroute:   "enroute",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a wire-format status string.
//
// Unrecognized strings are a contract violation with the external store and
// fail loudly with a validation error; they are never coerced to a default.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: received, preparing, ready, assigned, enroute,
// completed, cancelled. StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// String returns the lowercase wire name of the status.
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
