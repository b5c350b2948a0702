package messaging

import (
	"context"

	"github.com/rs/zerolog"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Close() error
}

// LogBroker writes published messages to the log. It stands in for a real
// broker when none is configured.
type LogBroker struct {
	logger *zerolog.Logger
}

func NewLogBroker(logger *zerolog.Logger) *LogBroker {
	return &LogBroker{logger: logger}
}

func (b *LogBroker) Publish(_ context.Context, channel string, payload []byte) error {
	b.logger.Debug().
		Str("channel", channel).
		RawJSON("payload", payload).
		Msg("event published")
	return nil
}

func (b *LogBroker) Close() error {
	return nil
}
