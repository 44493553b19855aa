package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ordersExchange = "orders_topic"

// Publisher emits order events to the orders topic exchange.
// Implements ports.EventPublisher.
type Publisher struct {
	conn *Connection
}

// NewPublisher creates a publisher on an established connection.
func NewPublisher(conn *Connection) *Publisher {
	return &Publisher{conn: conn}
}

// PublishOrderStatusChanged publishes the event with routing key
// "order.status.<to>" so consumers can subscribe per target status.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	routingKey := fmt.Sprintf("order.status.%s", event.To)

	err = ch.PublishWithContext(ctx, ordersExchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close releases the underlying connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
