// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence. The fee rule set is stored as the raw draft
// document in a jsonb column, so the stored form is exactly what the manager
// last saved and can be re-validated on load.
package restaurantrepo

import (
	"encoding/json"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/pricing"
	"restaurant/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string
	Phone            string
	Email            string
	DeliveryZone     string
	DeliveryRadiusKm *float64
	RuleSet          []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) (RestaurantDTO, error) {
	ruleSet, err := json.Marshal(aggregate.RuleSetDocument())
	if err != nil {
		return RestaurantDTO{}, fmt.Errorf("marshal rule set document: %w", err)
	}

	return RestaurantDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Phone:            aggregate.Phone(),
		Email:            aggregate.Email(),
		DeliveryZone:     aggregate.DeliveryZone(),
		DeliveryRadiusKm: aggregate.DeliveryRadiusKm(),
		RuleSet:          ruleSet,
	}, nil
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var draft pricing.RuleSetDraft
	if err := json.Unmarshal(dto.RuleSet, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal rule set document: %w", err)
	}

	return restaurant.RestoreRestaurant(
		id,
		dto.Name,
		dto.Phone,
		dto.Email,
		dto.DeliveryZone,
		dto.DeliveryRadiusKm,
		draft,
	)
}
