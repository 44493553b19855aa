package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderStatusChangedEvent notifies downstream consumers that an order moved
// to a new status. Statuses travel as their stable wire strings.
type OrderStatusChangedEvent struct {
	OrderID      string `json:"order_id"`
	RestaurantID string `json:"restaurant_id"`
	From         string `json:"from"`
	To           string `json:"to"`
	Role         string `json:"role"`
	OccurredAt   string `json:"occurred_at"`
}

// EventPublisher defines the outbound messaging contract for domain events.
// Publishing happens after the transaction commits; a publish failure is
// logged but never rolls back the state change.
type EventPublisher interface {
	// PublishOrderStatusChanged emits a status-changed event for the order.
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error

	// Close releases the underlying broker resources.
	Close() error
}

// StatusChangedEventOf builds the event payload for a committed transition.
func StatusChangedEventOf(aggregate *order.Order, from order.Status, role order.Role, occurredAt string) OrderStatusChangedEvent {
	return OrderStatusChangedEvent{
		OrderID:      aggregate.ID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		From:         from.String(),
		To:           aggregate.Status().String(),
		Role:         role.String(),
		OccurredAt:   occurredAt,
	}
}
