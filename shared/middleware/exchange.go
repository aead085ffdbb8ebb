package middleware

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeProducer publishes messages to a fanout exchange.
type ExchangeProducer struct {
	exchangeName string
	conn         *amqp.Connection
	channel      *amqp.Channel
}

// NewExchangeProducer connects to the broker and declares the exchange.
// The exchange is durable so notifications survive broker restarts.
func NewExchangeProducer(exchangeName string, config *ConnectionConfig) (*ExchangeProducer, error) {
	conn, ch, err := CreateChannel(config)
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchangeName,
		"fanout",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchangeName, err)
	}

	return &ExchangeProducer{
		exchangeName: exchangeName,
		conn:         conn,
		channel:      ch,
	}, nil
}

// Send publishes one message to the exchange.
func (p *ExchangeProducer) Send(message []byte) error {
	if p.channel == nil {
		return fmt.Errorf("exchange %q: channel is closed", p.exchangeName)
	}

	err := p.channel.Publish(
		p.exchangeName,
		"",    // routing key ignored by fanout
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/octet-stream",
			Body:        message,
		},
	)
	if err != nil {
		return fmt.Errorf("exchange %q: publish failed: %w", p.exchangeName, err)
	}
	return nil
}

// Close disconnects from the broker.
func (p *ExchangeProducer) Close() error {
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	p.channel = nil
	return err
}
