package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new incoming order.
// The order always starts in the received status; placement time comes from
// the handler's clock, not from the caller.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	fulfillment  order.Fulfillment
	subtotal     kernel.Money
	scheduledAt  *time.Time
	distanceKm   *float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// scheduledAt and distanceKm are optional; a distance, when given, must be
// non-negative. Timing consistency between scheduledAt and the placement
// time is enforced by the aggregate once the clock stamps placedAt.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	fulfillment order.Fulfillment,
	subtotal kernel.Money,
	scheduledAt *time.Time,
	distanceKm *float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		subtotal:    subtotal,
		scheduledAt: scheduledAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setFulfillment(fulfillment),
		cmd.setDistanceKm(distanceKm),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the identifier of the restaurant taking the order.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Fulfillment returns whether the order is for pickup or delivery.
func (c CreateOrderCommand) Fulfillment() order.Fulfillment {
	return c.fulfillment
}

// Subtotal returns the cart subtotal.
func (c CreateOrderCommand) Subtotal() kernel.Money {
	return c.subtotal
}

// ScheduledAt returns the requested ready time, or nil for as-soon-as-possible.
func (c CreateOrderCommand) ScheduledAt() *time.Time {
	return c.scheduledAt
}

// DistanceKm returns the delivery distance, or nil when not applicable.
func (c CreateOrderCommand) DistanceKm() *float64 {
	return c.distanceKm
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setFulfillment(fulfillment order.Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}

	c.fulfillment = fulfillment
	return nil
}

func (c *CreateOrderCommand) setDistanceKm(distanceKm *float64) error {
	if distanceKm != nil && *distanceKm < 0 {
		return errs.NewValueIsInvalidError("distanceKm")
	}

	c.distanceKm = distanceKm
	return nil
}
