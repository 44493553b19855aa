package commands

import (
	"context"

	"restaurant/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles the business logic for restaurant
// registration.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command.
// Creates the restaurant with its default flat rule set and persists it.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
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

	aggregate, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Name(), cmd.Timezone())
	if err != nil {
		return err
	}

	if err := uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
