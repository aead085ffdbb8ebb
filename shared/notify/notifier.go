// Package notify tells downstream consumers when partition files land.
package notify

import (
	"persongen/protocol/signals"
	"persongen/shared/logging"
	"persongen/shared/middleware"
)

// Notifier is told about every durably written partition file. Failures to
// notify must not fail the partition: the file is already on disk.
type Notifier interface {
	PartitionWritten(runID string, partitionIndex int, rowCount int64, path string) error
	Close() error
}

// Nop is the notifier used when no broker is configured.
type Nop struct{}

// PartitionWritten does nothing.
func (Nop) PartitionWritten(string, int, int64, string) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }

// AMQPNotifier publishes partition notifications to a fanout exchange.
type AMQPNotifier struct {
	producer *middleware.ExchangeProducer
}

// NewAMQPNotifier connects to the broker and declares the exchange.
func NewAMQPNotifier(exchangeName string, config *middleware.ConnectionConfig) (*AMQPNotifier, error) {
	producer, err := middleware.NewExchangeProducer(exchangeName, config)
	if err != nil {
		return nil, err
	}
	logging.LogInfo("Notifier", "Publishing partition notifications to exchange %q", exchangeName)
	return &AMQPNotifier{producer: producer}, nil
}

// PartitionWritten serializes and publishes one notification.
func (n *AMQPNotifier) PartitionWritten(runID string, partitionIndex int, rowCount int64, path string) error {
	notification := signals.NewPartitionNotification(runID, partitionIndex, rowCount, path)
	data, err := signals.SerializePartitionNotification(notification)
	if err != nil {
		return err
	}
	return n.producer.Send(data)
}

// Close disconnects from the broker.
func (n *AMQPNotifier) Close() error {
	return n.producer.Close()
}
