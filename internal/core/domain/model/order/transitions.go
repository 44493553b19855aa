package order

import (
	"errors"
	"fmt"
	"sort"
)

// Rejection reasons for status transition requests. These are the stable
// wire strings a UI renders and a caller branches on.
const (
	ReasonInvalidTransition = "invalid_transition"
	ReasonTerminalState     = "terminal_state"
	ReasonForbiddenRole     = "forbidden_role"
)

// Sentinel errors for transition rejections. TransitionError unwraps to one
// of these so callers can classify rejections with errors.Is.
var (
	// ErrInvalidTransition indicates the requested transition is not in the
	// lifecycle table for the order's fulfillment type.
	ErrInvalidTransition = errors.New(ReasonInvalidTransition)

	// ErrTerminalState indicates the order is already completed or cancelled.
	ErrTerminalState = errors.New(ReasonTerminalState)

	// ErrForbiddenRole indicates the transition exists but the requesting
	// role is not in its permitted set.
	ErrForbiddenRole = errors.New(ReasonForbiddenRole)
)

// TransitionError is the rejection returned by RequestTransition.
// It carries the stable reason string plus the full request context
// for display and logging.
type TransitionError struct {
	Reason      string
	From        Status
	To          Status
	Fulfillment Fulfillment
	Role        Role
}

// Error implements the error interface with a stable, renderable message.
func (e *TransitionError) Error() string {
	switch e.Reason {
	case ReasonTerminalState:
		return fmt.Sprintf("%s: %s is terminal", e.Reason, e.From)
	case ReasonForbiddenRole:
		return fmt.Sprintf("%s: %s may not move a %s order from %s to %s",
			e.Reason, e.Role, e.Fulfillment, e.From, e.To)
	default:
		return fmt.Sprintf("%s: %s -> %s is not allowed for %s orders",
			e.Reason, e.From, e.To, e.Fulfillment)
	}
}

// Unwrap returns the sentinel matching the rejection reason.
func (e *TransitionError) Unwrap() error {
	switch e.Reason {
	case ReasonTerminalState:
		return ErrTerminalState
	case ReasonForbiddenRole:
		return ErrForbiddenRole
	default:
		return ErrInvalidTransition
	}
}

// transitionKey identifies one edge of the lifecycle graph for one
// fulfillment type.
type transitionKey struct {
	from        Status
	to          Status
	fulfillment Fulfillment
}

// transitionTable is the authoritative lifecycle definition: every legal
// (from, to, fulfillment) edge mapped to the roles permitted to request it.
// Representing the graph as data keeps the full rule set inspectable and
// testable without polymorphic status types.
var transitionTable = buildTransitionTable()

func buildTransitionTable() map[transitionKey][]Role {
	table := make(map[transitionKey][]Role)

	both := []Fulfillment{FulfillmentPickup, FulfillmentDelivery}
	deliveryOnly := []Fulfillment{FulfillmentDelivery}
	pickupOnly := []Fulfillment{FulfillmentPickup}

	add := func(from, to Status, fulfillments []Fulfillment, roles ...Role) {
		for _, f := range fulfillments {
			table[transitionKey{from: from, to: to, fulfillment: f}] = roles
		}
	}

	// Kitchen flow, shared by both fulfillment types.
	add(StatusReceived, StatusPreparing, both, RoleCook, RoleManager)
	add(StatusPreparing, StatusReady, both, RoleCook, RoleManager)

	// Courier flow, delivery orders only.
	add(StatusReady, StatusAssigned, deliveryOnly, RoleDelivery, RoleManager)
	add(StatusAssigned, StatusEnroute, deliveryOnly, RoleDelivery, RoleManager)
	add(StatusEnroute, StatusCompleted, deliveryOnly, RoleDelivery, RoleManager)

	// Pickup orders complete straight from the counter.
	add(StatusReady, StatusCompleted, pickupOnly, RoleCook, RoleManager)

	// Cancellation: manager from any non-terminal status; cook and delivery
	// staff only before the order is ready.
	for _, from := range []Status{StatusReceived, StatusPreparing, StatusReady, StatusAssigned, StatusEnroute} {
		roles := []Role{RoleManager}
		if from == StatusReceived || from == StatusPreparing {
			roles = []Role{RoleCook, RoleDelivery, RoleManager}
		}
		add(from, StatusCancelled, both, roles...)
	}

	return table
}

// RequestTransition decides whether the requested status change is legal for
// the given fulfillment type and actor role. It is pure, total, and
// side-effect free: the caller persists the new status only after a nil
// result, never on a rejection.
//
// Rejections are *TransitionError values with a stable reason, checked in
// this order:
//   - terminal_state: the current status is completed or cancelled
//   - invalid_transition: the edge is not in the lifecycle table
//   - forbidden_role: the edge exists but the role is not permitted
//
// Malformed enumeration inputs are a contract violation and return a
// validation error rather than a rejection.
func RequestTransition(current Status, requested Status, fulfillment Fulfillment, role Role) error {
	if err := errors.Join(
		current.Validate(),
		requested.Validate(),
		fulfillment.Validate(),
		role.Validate(),
	); err != nil {
		return err
	}

	reject := func(reason string) error {
		return &TransitionError{
			Reason:      reason,
			From:        current,
			To:          requested,
			Fulfillment: fulfillment,
			Role:        role,
		}
	}

	if current.IsTerminal() {
		return reject(ReasonTerminalState)
	}

	roles, ok := transitionTable[transitionKey{from: current, to: requested, fulfillment: fulfillment}]
	if !ok {
		return reject(ReasonInvalidTransition)
	}

	for _, permitted := range roles {
		if permitted == role {
			return nil
		}
	}
	return reject(ReasonForbiddenRole)
}

// AllowedTransitions returns the statuses reachable from current for the
// given fulfillment type by at least one role, sorted for stable display.
func AllowedTransitions(current Status, fulfillment Fulfillment) []Status {
	var next []Status
	for key := range transitionTable {
		if key.from == current && key.fulfillment == fulfillment {
			next = append(next, key.to)
		}
	}
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	return next
}
