package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	model "pinstack-publish-service/internal/domain/models"
	ports "pinstack-publish-service/internal/domain/ports/output"
)

// EventPublisher fans domain events out over a Redis pub/sub channel as JSON.
type EventPublisher struct {
	client  *Client
	channel string
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewEventPublisher(client *Client, channel string, log ports.Logger, metrics ports.MetricsProvider) *EventPublisher {
	return &EventPublisher{client: client, channel: channel, log: log, metrics: metrics}
}

func (p *EventPublisher) Publish(ctx context.Context, event *model.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.metrics.IncrementEventsPublished(string(event.Name), false)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	receivers, err := p.client.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		p.metrics.IncrementEventsPublished(string(event.Name), false)
		p.log.Error("Failed to publish event",
			slog.String("event", string(event.Name)),
			slog.Int64("post_id", event.PostID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.metrics.IncrementEventsPublished(string(event.Name), true)
	p.log.Debug("Event published",
		slog.String("event", string(event.Name)),
		slog.String("event_id", event.ID),
		slog.Int64("post_id", event.PostID),
		slog.Int64("receivers", receivers))
	return nil
}
