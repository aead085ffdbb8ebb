// Package middleware wraps the AMQP plumbing used to publish partition
// completion notifications.
package middleware

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConnectionConfig holds configuration for RabbitMQ connections
type ConnectionConfig struct {
	URL      string
	Username string
	Password string
	Host     string
	Port     int
	VHost    string
}

// BuildURL constructs a RabbitMQ URL from the configuration
func (c *ConnectionConfig) BuildURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d%s", c.Username, c.Password, c.Host, c.Port, c.VHost)
}

// CreateChannel opens a connection and a channel on it. The connection is
// owned by the returned channel's lifetime; closing the connection closes
// the channel.
func CreateChannel(config *ConnectionConfig) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(config.BuildURL())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return conn, ch, nil
}
