// Package rabbitmq provides the AMQP implementation of the outbound event
// publisher. Events are published to a durable topic exchange so consumers
// can bind to the routing keys they care about, e.g. "order.status.completed".
package rabbitmq

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Config holds the broker connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
}

// Connection wraps an AMQP connection with close-state tracking so channel
// requests after Close fail fast instead of panicking inside the driver.
type Connection struct {
	conn   *amqp.Connection
	mu     sync.RWMutex
	closed bool
}

// Connect dials the broker described by the config.
func Connect(cfg Config) (*Connection, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.User, cfg.Password, cfg.Host, cfg.Port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return &Connection{conn: conn}, nil
}

// Channel opens a new channel on the connection.
func (c *Connection) Channel() (*amqp.Channel, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, fmt.Errorf("connection is closed")
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}

// Close shuts the connection down. Safe to call more than once.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil && !c.conn.IsClosed() {
		return c.conn.Close()
	}
	return nil
}
