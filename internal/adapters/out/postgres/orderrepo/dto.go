// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses and fulfillment types are stored as their stable wire strings so
// rows stay readable in psql and enum values can be reordered in code
// without a migration.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;index"`
	Fulfillment   string
	SubtotalCents int64
	DistanceKm    *float64
	Status        string `gorm:"index"`
	PlacedAt      time.Time
	ScheduledAt   *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		RestaurantID:  aggregate.RestaurantID().Bytes(),
		Fulfillment:   aggregate.Fulfillment().String(),
		SubtotalCents: aggregate.Subtotal().Cents(),
		DistanceKm:    aggregate.DistanceKm(),
		Status:        aggregate.Status().String(),
		PlacedAt:      aggregate.PlacedAt(),
		ScheduledAt:   aggregate.ScheduledAt(),
		CompletedAt:   aggregate.CompletedAt(),
		CancelledAt:   aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the aggregate via RestoreOrder, which also records the
// persisted status used for the conditional update on the next transition.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	fulfillment, err := order.FulfillmentFromString(dto.Fulfillment)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoneyFromCents(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		fulfillment,
		subtotal,
		status,
		dto.PlacedAt,
		dto.ScheduledAt,
		dto.CompletedAt,
		dto.CancelledAt,
		dto.DistanceKm,
	)
}
