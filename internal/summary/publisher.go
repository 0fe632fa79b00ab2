// Package summary provides the background pipeline that keeps periodic
// journal summaries up to date. Entry mutations publish events to a Redis
// stream; a consumer-group worker recomputes the affected users' weekly and
// monthly aggregates.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daybook/daybook/internal/metrics"
)

const (
	// StreamKey is the Redis stream for entry change events.
	StreamKey = "stream:entry_events"

	// DeadLetterStreamKey is the Redis stream for poison messages.
	DeadLetterStreamKey = "stream:entry_events:dlq"

	// MaxStreamLen is the approximate max length of the stream.
	MaxStreamLen = 100000

	// PublishTimeout is the max time to wait for Redis publish.
	PublishTimeout = 100 * time.Millisecond
)

// EntryEventPayload is the compact event format for the Redis stream. The
// worker recomputes aggregates from the database, so the payload only needs
// to say whose entries changed and when.
type EntryEventPayload struct {
	UserID    string `json:"uid"`
	ChangedAt int64  `json:"t"` // Unix milliseconds
}

// Publisher enqueues entry change events to the Redis stream.
type Publisher struct {
	redis   *redis.Client
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewPublisher creates a new entry event publisher.
func NewPublisher(client *redis.Client, logger *slog.Logger, recorder metrics.Recorder) *Publisher {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Publisher{
		redis:   client,
		logger:  logger.With("component", "summary.publisher"),
		metrics: recorder,
	}
}

// Publish adds an entry event to the stream synchronously.
func (p *Publisher) Publish(ctx context.Context, event EntryEventPayload) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	result, err := p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: MaxStreamLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"payload": string(data),
		},
	}).Result()

	if err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	return result, nil
}

// PublishEntryEvent publishes without blocking the caller. Errors are logged
// but not returned; a lost event only delays the next recompute. Implements
// service.EntryEventPublisher.
func (p *Publisher) PublishEntryEvent(_ context.Context, userID string) {
	event := EntryEventPayload{
		UserID:    userID,
		ChangedAt: time.Now().UnixMilli(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
		defer cancel()

		streamID, err := p.Publish(ctx, event)
		if err != nil {
			p.logger.Warn("failed to publish entry event",
				"user_id", event.UserID,
				"error", err,
			)
			p.metrics.IncSummaryEventPublished("dropped")
			return
		}

		p.logger.Debug("entry event published",
			"user_id", event.UserID,
			"stream_id", streamID,
		)
		p.metrics.IncSummaryEventPublished("success")
	}()
}
