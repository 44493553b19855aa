package queries

import (
	"context"
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads a restaurant's non-terminal orders from
// the database and annotates each row with urgency flags computed against
// the injected clock.
type GetActiveOrdersQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order queries.
// Requires a GORM database connection and a clock for flag computation.
func NewGetActiveOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db, clock: clock}
}

// Handle executes the query. Orders come back in placement order, oldest
// first, which is the order a kitchen works through them.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	responses := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			fulfillment,
			subtotal_cents,
			status,
			placed_at,
			scheduled_at
		FROM orders
		WHERE restaurant_id = ? AND status NOT IN (?, ?)
		ORDER BY placed_at
	`, query.RestaurantID().Bytes(), order.StatusCompleted.String(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			fulfillment   string
			subtotalCents int64
			statusStr     string
			placedAt      time.Time
			scheduledAt   sql.NullTime
		)

		if err = rows.Scan(&id, &fulfillment, &subtotalCents, &statusStr, &placedAt, &scheduledAt); err != nil {
			return nil, err
		}

		response, buildErr := buildActiveOrderResponse(
			id, fulfillment, subtotalCents, statusStr, placedAt, scheduledAt, now)
		if buildErr != nil {
			return nil, buildErr
		}
		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}

func buildActiveOrderResponse(
	id uuid.UUID,
	fulfillment string,
	subtotalCents int64,
	statusStr string,
	placedAt time.Time,
	scheduledAt sql.NullTime,
	now time.Time,
) (GetActiveOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	status, err := order.StatusFromString(statusStr)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	fulfillmentType, err := order.FulfillmentFromString(fulfillment)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	subtotal, err := kernel.NewMoneyFromCents(subtotalCents)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	var scheduledAtPtr *time.Time
	if scheduledAt.Valid {
		t := scheduledAt.Time
		scheduledAtPtr = &t
	}

	flags := order.ComputeUrgencyFlags(status, fulfillmentType, placedAt, scheduledAtPtr, now)

	return GetActiveOrdersQueryResponse{
		ID:          orderID,
		Fulfillment: fulfillmentType.String(),
		Subtotal:    subtotal.String(),
		Status:      status.String(),
		PlacedAt:    placedAt,
		ScheduledAt: scheduledAtPtr,
		Late:        flags.Late,
		Soon:        flags.Soon,
	}, nil
}
