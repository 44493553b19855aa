package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveRestaurantsQuery lists the restaurants that currently have at
// least one non-terminal order. Used by the urgency watchdog to know which
// dashboards are worth scanning.
type GetActiveRestaurantsQuery struct{}

// NewGetActiveRestaurantsQuery creates the query. It carries no parameters.
func NewGetActiveRestaurantsQuery() GetActiveRestaurantsQuery {
	return GetActiveRestaurantsQuery{}
}

// GetActiveRestaurantsQueryHandler reads the distinct restaurant IDs with
// active orders straight from the orders table.
type GetActiveRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRestaurantsQueryHandler creates a handler for the query.
func NewGetActiveRestaurantsQueryHandler(db *gorm.DB) GetActiveRestaurantsQueryHandler {
	return GetActiveRestaurantsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetActiveRestaurantsQueryHandler) Handle(
	ctx context.Context,
	_ GetActiveRestaurantsQuery,
) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT restaurant_id
		FROM orders
		WHERE status NOT IN (?, ?)
	`, order.StatusCompleted.String(), order.StatusCancelled.String()).Scan(&rawIDs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		id, err := kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
