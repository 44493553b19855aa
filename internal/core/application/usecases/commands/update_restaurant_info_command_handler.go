package commands

import (
	"context"
	"errors"
)

// UpdateRestaurantInfoCommandHandler handles contact and delivery settings
// updates, gated by the restaurant package's field validators.
type UpdateRestaurantInfoCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateRestaurantInfoCommandHandler creates a handler for settings updates.
func NewUpdateRestaurantInfoCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantInfoCommandHandler {
	return UpdateRestaurantInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settings update command. Every provided field is
// validated before anything is persisted; on any failure the transaction
// rolls back and the restaurant keeps all its previous settings.
func (h *UpdateRestaurantInfoCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantInfoCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	var validationErrors []error
	if cmd.Phone() != "" || cmd.Email() != "" {
		validationErrors = append(validationErrors, aggregate.UpdateContactInfo(cmd.Phone(), cmd.Email()))
	}
	if cmd.DeliveryZone() != "" {
		validationErrors = append(validationErrors, aggregate.SetDeliveryZone(cmd.DeliveryZone()))
	}
	if cmd.DeliveryRadius() != "" {
		validationErrors = append(validationErrors, aggregate.SetDeliveryRadius(cmd.DeliveryRadius()))
	}
	if err := errors.Join(validationErrors...); err != nil {
		return err
	}

	if err := restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
