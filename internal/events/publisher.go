// Package events publishes board summaries to a Redis stream.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	infraevents "github.com/jonesrussell/pulseboard/infrastructure/events"
	"github.com/jonesrussell/pulseboard/infrastructure/logger"
	"github.com/jonesrussell/pulseboard/internal/domain"
	"github.com/jonesrussell/pulseboard/internal/telemetry"
)

// DefaultPublishTimeout bounds a publish made on the request path.
const DefaultPublishTimeout = 500 * time.Millisecond

// Publisher writes events to a Redis stream. A nil *Publisher is a no-op.
type Publisher struct {
	client  *redis.Client
	stream  string
	timeout time.Duration
	log     logger.Logger
	metrics *telemetry.Provider
}

// NewPublisher returns nil when client is nil.
func NewPublisher(client *redis.Client, stream string, log logger.Logger, metrics *telemetry.Provider) *Publisher {
	if client == nil {
		return nil
	}
	if stream == "" {
		stream = infraevents.DefaultStreamName
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Publisher{
		client:  client,
		stream:  stream,
		timeout: DefaultPublishTimeout,
		log:     log,
		metrics: metrics,
	}
}

// Publish appends event to the stream, filling EventID and Timestamp when unset.
func (p *Publisher) Publish(ctx context.Context, event infraevents.Event) error {
	if p == nil || p.client == nil {
		return nil
	}

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	result := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{infraevents.PayloadField: string(payload)},
	})
	p.metrics.RecordEventPublished(result.Err())

	if publishErr := result.Err(); publishErr != nil {
		return fmt.Errorf("publish to stream %s: %w", p.stream, publishErr)
	}

	p.log.Debug("Published event",
		logger.String("event_type", string(event.EventType)),
		logger.String("event_id", event.EventID.String()),
		logger.String("stream_id", result.Val()),
	)
	return nil
}

// PublishBoard publishes a BOARD_RENDERED summary of b within the publish
// timeout. Failures are logged and not returned.
func (p *Publisher) PublishBoard(ctx context.Context, b *domain.Board, requestID string) {
	if p == nil || b == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.Publish(ctx, infraevents.Event{
		EventType: infraevents.BoardRendered,
		Payload: infraevents.BoardRenderedPayload{
			Source:      b.Source,
			CollectedAt: b.CollectedAt,
			Total:       b.Counts.Total,
			Negative:    b.Counts.Negative,
			Neutral:     b.Counts.Neutral,
			Degraded:    b.Degraded,
			RequestID:   requestID,
		},
	})
	if err != nil {
		p.log.Warn("Failed to publish board event", logger.Error(err))
	}
}

// Ping checks the Redis connection.
func (p *Publisher) Ping(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.client.Ping(ctx).Err()
}

// Close releases the Redis client.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.client.Close()
}
