package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// CreateRestaurantCommand represents a request to register a new restaurant.
// New restaurants start with a default flat zero-fee rule set in their own
// timezone; pricing is configured afterwards through SaveFeeSettingsCommand.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	timezone     *time.Location

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a new restaurant.
// timezone is an IANA name such as "Europe/Berlin"; blank defaults to UTC.
func NewCreateRestaurantCommand(restaurantID kernel.UUID, name string, timezone string) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setTimezone(timezone),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Timezone returns the restaurant's local timezone.
func (c CreateRestaurantCommand) Timezone() *time.Location {
	return c.timezone
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setTimezone(timezone string) error {
	if timezone == "" {
		c.timezone = time.UTC
		return nil
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("timezone", err)
	}

	c.timezone = location
	return nil
}
