package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Verifies the target restaurant exists and creates the order in the
// received status with the placement time taken from the injected clock.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory spanning both aggregates and a clock for placedAt.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order intake command.
// The restaurant lookup and the order insert run in one transaction so an
// order can never be taken for a restaurant deleted mid-request.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.RestaurantID(),
		cmd.Fulfillment(),
		cmd.Subtotal(),
		h.clock.Now(),
		cmd.ScheduledAt(),
		cmd.DistanceKm(),
	)
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
