package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/pricing"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSaveFeeSettingsCommandIsNotConstructed = errors.New(
		"SaveFeeSettingsCommand must be created via NewSaveFeeSettingsCommand constructor",
	)
)

// FeeSettingsValidationError carries the per-field failures of a rejected
// fee-settings draft so the HTTP layer can render them next to the inputs
// that caused them.
type FeeSettingsValidationError struct {
	FieldErrors []pricing.FieldError
}

// Error implements the error interface.
func (e *FeeSettingsValidationError) Error() string {
	messages := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		messages[i] = fe.Error()
	}
	return fmt.Sprintf("fee settings are invalid: %s", strings.Join(messages, "; "))
}

// SaveFeeSettingsCommand represents a request to replace a restaurant's
// delivery-fee rule set with a newly edited draft. The draft travels
// unparsed; validation happens against the aggregate so a rejected draft
// cannot disturb the committed rule set.
type SaveFeeSettingsCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	draft        pricing.RuleSetDraft

	guard guard.ConstructorGuard
}

// NewSaveFeeSettingsCommand creates a command to save fee settings.
func NewSaveFeeSettingsCommand(
	restaurantID kernel.UUID,
	draft pricing.RuleSetDraft,
) (SaveFeeSettingsCommand, error) {
	cmd := SaveFeeSettingsCommand{
		draft: draft,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRestaurantID(restaurantID); err != nil {
		return SaveFeeSettingsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveFeeSettingsCommand) Validate() error {
	return c.guard.Validate(ErrSaveFeeSettingsCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant being configured.
func (c SaveFeeSettingsCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Draft returns the unparsed rule-set draft.
func (c SaveFeeSettingsCommand) Draft() pricing.RuleSetDraft {
	return c.draft
}

func (c *SaveFeeSettingsCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
