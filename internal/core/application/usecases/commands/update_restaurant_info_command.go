package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrUpdateRestaurantInfoCommandIsNotConstructed = errors.New(
		"UpdateRestaurantInfoCommand must be created via NewUpdateRestaurantInfoCommand constructor",
	)
	ErrNoFieldsToUpdate = errors.New("at least one settings field must be provided")
)

// UpdateRestaurantInfoCommand represents a request to update a restaurant's
// contact and delivery settings. All fields are optional strings; a blank
// field keeps its current value. Field-level validation happens against the
// aggregate's validators when the command is handled.
type UpdateRestaurantInfoCommand struct { //nolint:recvcheck //using for validation
	restaurantID   kernel.UUID
	phone          string
	email          string
	deliveryZone   string
	deliveryRadius string

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantInfoCommand creates a command to update restaurant settings.
// At least one field must be non-blank.
func NewUpdateRestaurantInfoCommand(
	restaurantID kernel.UUID,
	phone string,
	email string,
	deliveryZone string,
	deliveryRadius string,
) (UpdateRestaurantInfoCommand, error) {
	cmd := UpdateRestaurantInfoCommand{
		phone:          phone,
		email:          email,
		deliveryZone:   deliveryZone,
		deliveryRadius: deliveryRadius,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setRestaurantID(restaurantID); err != nil {
		return UpdateRestaurantInfoCommand{}, err
	}

	if phone == "" && email == "" && deliveryZone == "" && deliveryRadius == "" {
		return UpdateRestaurantInfoCommand{}, ErrNoFieldsToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRestaurantInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantInfoCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant being updated.
func (c UpdateRestaurantInfoCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Phone returns the new contact phone, or blank to keep the current one.
func (c UpdateRestaurantInfoCommand) Phone() string {
	return c.phone
}

// Email returns the new contact email, or blank to keep the current one.
func (c UpdateRestaurantInfoCommand) Email() string {
	return c.email
}

// DeliveryZone returns the new GeoJSON zone, or blank to keep the current one.
func (c UpdateRestaurantInfoCommand) DeliveryZone() string {
	return c.deliveryZone
}

// DeliveryRadius returns the new radius as text, or blank to keep the current one.
func (c UpdateRestaurantInfoCommand) DeliveryRadius() string {
	return c.deliveryRadius
}

func (c *UpdateRestaurantInfoCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
