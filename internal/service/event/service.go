// Package event publishes record lifecycle events to the message broker.
// Publishing is best-effort: a broker failure is logged and counted but
// never surfaced to the request that triggered it.
package event

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/sanari/health-api/pkg/identity"
	"github.com/sanari/health-api/pkg/messaging"
	"github.com/sanari/health-api/pkg/metrics"
)

const (
	TypeRecordCreated = "record.created"
	TypeRecordDeleted = "record.deleted"
)

// Event describes a single record lifecycle transition.
type Event struct {
	Type       string `json:"type"`
	RecordType string `json:"recordType"`
	RecordID   string `json:"recordId"`
	OccurredAt string `json:"occurredAt"`
}

type Publisher struct {
	broker  messaging.Broker
	logger  *zerolog.Logger
	metrics *metrics.Metrics
	channel string
}

func NewPublisher(broker messaging.Broker, logger *zerolog.Logger, m *metrics.Metrics, channel string) *Publisher {
	return &Publisher{
		broker:  broker,
		logger:  logger,
		metrics: m,
		channel: channel,
	}
}

func (p *Publisher) RecordCreated(ctx context.Context, recordType, recordID string) {
	p.publish(ctx, Event{
		Type:       TypeRecordCreated,
		RecordType: recordType,
		RecordID:   recordID,
		OccurredAt: identity.NowISO(),
	})
}

func (p *Publisher) RecordDeleted(ctx context.Context, recordType, recordID string) {
	p.publish(ctx, Event{
		Type:       TypeRecordDeleted,
		RecordType: recordType,
		RecordID:   recordID,
		OccurredAt: identity.NowISO(),
	})
}

func (p *Publisher) publish(ctx context.Context, evt Event) {
	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error().Err(err).Msg("failed to marshal event")
		p.metrics.EventsFailed.Inc()
		return
	}
	if err := p.broker.Publish(ctx, p.channel, payload); err != nil {
		p.logger.Error().Err(err).
			Str("type", evt.Type).
			Str("record_type", evt.RecordType).
			Msg("failed to publish event")
		p.metrics.EventsFailed.Inc()
		return
	}
	p.metrics.EventsPublished.Inc()
}
