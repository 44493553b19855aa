package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order placed through the external ordering
// channel. It is the aggregate root for the order lifecycle: the core reads
// it, decides which status transitions are legal, and proposes status
// writes; the external store owns persistence and resolves concurrent
// writers with a conditional update.
//
// Order follows these invariants:
//   - Must have valid order and restaurant identifiers
//   - Fulfillment type is fixed at placement and never changes
//   - Status transitions follow the role-gated lifecycle table
//   - A scheduled time, when present, is after the placement time
//   - Terminal timestamps are stamped exactly when the terminal transition is accepted
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// restaurantID identifies the restaurant the order was placed with
	restaurantID kernel.UUID

	// fulfillment is how the order reaches the customer (pickup or delivery)
	fulfillment Fulfillment

	// subtotal is the order's item total, used for fee computation
	subtotal kernel.Money

	// distanceKm is the delivery distance supplied by the ordering channel
	// (nil for pickup orders or when not yet known)
	distanceKm *float64

	// status is the current state in the order lifecycle
	status Status

	// persistedStatus is the status the order carried when loaded from the
	// external store; conditional updates key on it to resolve write races
	persistedStatus Status

	// placedAt is when the order was placed
	placedAt time.Time

	// scheduledAt is the requested future fulfillment time, if any
	scheduledAt *time.Time

	// completedAt is stamped when the order reaches completed
	completedAt *time.Time

	// cancelledAt is stamped when the order reaches cancelled
	cancelledAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in received status. This is the only way to
// create an order that does not yet exist in the external store.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - restaurantID: the restaurant the order belongs to (must be a valid UUID)
//   - fulfillment: pickup or delivery (immutable afterwards)
//   - subtotal: the order's item total
//   - placedAt: placement timestamp (must not be zero)
//   - scheduledAt: optional future-dated fulfillment time (must be after placedAt)
//   - distanceKm: optional delivery distance in kilometres (must be non-negative)
//
// Example:
//
//	o, err := order.NewOrder(orderID, restaurantID, order.FulfillmentDelivery,
//	    subtotal, clock.Now(), nil, nil)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	fulfillment Fulfillment,
	subtotal kernel.Money,
	placedAt time.Time,
	scheduledAt *time.Time,
	distanceKm *float64,
) (*Order, error) {
	o := &Order{
		status:        StatusReceived,
		subtotal:      subtotal,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setFulfillment(fulfillment),
		o.setPlacedAt(placedAt),
		o.setScheduledAt(scheduledAt),
		o.setDistanceKm(distanceKm),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The restored order
// remembers its persisted status so the repository can perform a conditional
// update keyed on it (compare-and-set) when the status changes.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	fulfillment Fulfillment,
	subtotal kernel.Money,
	status Status,
	placedAt time.Time,
	scheduledAt *time.Time,
	completedAt *time.Time,
	cancelledAt *time.Time,
	distanceKm *float64,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, restaurantID, fulfillment, subtotal, placedAt, scheduledAt, distanceKm)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.persistedStatus = status
	o.completedAt = completedAt
	o.cancelledAt = cancelledAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant the order belongs to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Fulfillment returns how the order reaches the customer.
func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

// Subtotal returns the order's item total.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DistanceKm returns the delivery distance, or nil when not supplied.
func (o *Order) DistanceKm() *float64 {
	return o.distanceKm
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PersistedStatus returns the status the order carried when loaded from the
// external store. StatusUnknown for orders that have never been persisted.
func (o *Order) PersistedStatus() Status {
	return o.persistedStatus
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ScheduledAt returns the requested fulfillment time, or nil for asap orders.
func (o *Order) ScheduledAt() *time.Time {
	return o.scheduledAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// TransitionTo requests a status change on behalf of an actor role.
//
// The request is checked against the lifecycle table for the order's
// fulfillment type; on rejection the order is left untouched and the
// *TransitionError carries the stable reason (terminal_state,
// invalid_transition, or forbidden_role). On success the status is updated
// and, for terminal transitions, the matching timestamp is stamped from now.
//
// Example:
//
//	if err := o.TransitionTo(order.StatusPreparing, order.RoleCook, clock.Now()); err != nil {
//	    var rejection *order.TransitionError
//	    if errors.As(err, &rejection) {
//	        // surface rejection.Reason to the user, do not persist
//	    }
//	    return err
//	}
//	// persist the new status with a conditional update
func (o *Order) TransitionTo(requested Status, role Role, now time.Time) error {
	if err := RequestTransition(o.status, requested, o.fulfillment, role); err != nil {
		return err
	}

	o.status = requested
	switch requested {
	case StatusCompleted:
		o.completedAt = &now
	case StatusCancelled:
		o.cancelledAt = &now
	}
	return nil
}

// UrgencyFlags derives the advisory late/soon flags for the order at the
// given instant. Never persisted; see ComputeUrgencyFlags.
func (o *Order) UrgencyFlags(now time.Time) UrgencyFlags {
	return ComputeUrgencyFlags(o.status, o.fulfillment, o.placedAt, o.scheduledAt, now)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setRestaurantID validates and sets the owning restaurant's identifier.
// This is a private method used only during construction.
func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

// setFulfillment validates and sets the fulfillment type.
// This is a private method used only during construction.
func (o *Order) setFulfillment(fulfillment Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	o.fulfillment = fulfillment
	return nil
}

// setPlacedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}

// setScheduledAt validates and sets the optional scheduled fulfillment time.
// This is a private method used only during construction.
func (o *Order) setScheduledAt(scheduledAt *time.Time) error {
	if scheduledAt == nil {
		return nil
	}
	if !scheduledAt.After(o.placedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduledAt",
			fmt.Errorf("%s is not after placement time %s", scheduledAt, o.placedAt),
		)
	}
	o.scheduledAt = scheduledAt
	return nil
}

// setDistanceKm validates and sets the optional delivery distance.
// This is a private method used only during construction.
func (o *Order) setDistanceKm(distanceKm *float64) error {
	if distanceKm == nil {
		return nil
	}
	if *distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm",
			fmt.Errorf("%g is negative", *distanceKm),
		)
	}
	o.distanceKm = distanceKm
	return nil
}
