package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change through a conditional write keyed on
	// the status the aggregate was loaded with. When another writer advanced
	// the order first, the update touches zero rows and a version-invalid
	// error is returned; the caller re-fetches and retries the transition.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves the non-terminal orders of a restaurant,
	// ordered by placement time.
	GetAllActive(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)
}
