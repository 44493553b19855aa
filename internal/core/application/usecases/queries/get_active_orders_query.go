// Package queries contains read-only operations for the CQRS architecture.
// Query handlers bypass the aggregates and read projections straight from
// the database, returning lightweight response structs for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves a restaurant's non-terminal orders for the
// kitchen dashboard, each annotated with its current urgency flags.
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for a restaurant's active orders.
func NewGetActiveOrdersQuery(restaurantID kernel.UUID) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := restaurantID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}
	query.restaurantID = restaurantID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant being inspected.
func (q GetActiveOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetActiveOrdersQueryResponse is one dashboard row: the order's wire-format
// fields plus the urgency flags computed at read time. Late and Soon are
// advisory and go stale the moment they are rendered; clients poll rather
// than cache them.
type GetActiveOrdersQueryResponse struct {
	ID          kernel.UUID
	Fulfillment string
	Subtotal    string
	Status      string
	PlacedAt    time.Time
	ScheduledAt *time.Time
	Late        bool
	Soon        bool
}
