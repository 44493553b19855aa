package commands

import (
	"context"
)

// SaveFeeSettingsCommandHandler handles fee-settings updates. A draft that
// fails validation is returned as a FeeSettingsValidationError and leaves
// the committed rule set untouched.
type SaveFeeSettingsCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewSaveFeeSettingsCommandHandler creates a handler for fee-settings updates.
func NewSaveFeeSettingsCommandHandler(uowFactory RestaurantUoWFactory) SaveFeeSettingsCommandHandler {
	return SaveFeeSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fee-settings command.
func (h *SaveFeeSettingsCommandHandler) Handle(ctx context.Context, cmd SaveFeeSettingsCommand) error {
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

	if fieldErrors := aggregate.SaveFeeSettings(cmd.Draft()); len(fieldErrors) > 0 {
		return &FeeSettingsValidationError{FieldErrors: fieldErrors}
	}

	if err := restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
