package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daybook/daybook/internal/id"
	"github.com/daybook/daybook/internal/metrics"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

const (
	// ConsumerGroup is the Redis consumer group name.
	ConsumerGroup = "summary_workers"

	// DefaultBatchSize is the max events per batch.
	DefaultBatchSize = 500

	// DefaultBlockTimeout is how long to block waiting for messages.
	DefaultBlockTimeout = 5 * time.Second

	// DefaultMaxRetries is the max retries for batch processing.
	DefaultMaxRetries = 3

	// DefaultClaimInterval is how often to scan pending messages.
	DefaultClaimInterval = 10 * time.Second

	// DefaultClaimIdle is the idle time before reclaiming pending messages.
	DefaultClaimIdle = 30 * time.Second

	// TopTagsLimit caps the tags stored per summary.
	TopTagsLimit = 5
)

// Repository defines the persistence interface for summary recomputation.
type Repository interface {
	AggregateEntries(ctx context.Context, userID string, from, to time.Time) (*repository.PeriodAggregate, error)
	UpsertSummary(ctx context.Context, s *model.Summary) error
	DeleteSummary(ctx context.Context, userID string, period model.SummaryPeriod, periodStart time.Time) error
}

// Worker consumes entry events and recomputes periodic summaries.
// Recomputation reads aggregates from scratch, so reprocessing the same
// event is harmless and at-least-once delivery is sufficient.
type Worker struct {
	redis         *redis.Client
	repo          Repository
	logger        *slog.Logger
	metrics       metrics.Recorder
	consumerID    string
	batchSize     int
	blockTimeout  time.Duration
	maxRetries    int
	claimInterval time.Duration
	claimIdle     time.Duration
	claimStartID  string
	lastClaim     time.Time

	started  bool
	draining bool
	cancel   context.CancelFunc
	done     chan struct{}
	mu       sync.Mutex
}

// NewWorker creates a new summary worker.
func NewWorker(client *redis.Client, repo Repository, logger *slog.Logger, consumerID string, recorder metrics.Recorder) *Worker {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Worker{
		redis:         client,
		repo:          repo,
		logger:        logger.With("component", "summary.worker", "consumer_id", consumerID),
		metrics:       recorder,
		consumerID:    consumerID,
		batchSize:     DefaultBatchSize,
		blockTimeout:  DefaultBlockTimeout,
		maxRetries:    DefaultMaxRetries,
		claimInterval: DefaultClaimInterval,
		claimIdle:     DefaultClaimIdle,
		claimStartID:  "0-0",
	}
}

// Run starts the worker loop. Blocks until context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return errors.New("worker already started")
	}
	w.started = true
	w.done = make(chan struct{})
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	defer close(w.done)

	if err := w.ensureConsumerGroup(ctx); err != nil {
		return fmt.Errorf("ensure consumer group: %w", err)
	}

	w.logger.Info("summary worker started")

	for {
		w.mu.Lock()
		draining := w.draining
		w.mu.Unlock()

		if draining {
			w.logger.Info("summary worker draining, stopping")
			return nil
		}

		select {
		case <-ctx.Done():
			w.logger.Info("summary worker stopping")
			return ctx.Err()
		default:
			if err := w.processOnce(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				w.logger.Error("process error", "error", err)
				time.Sleep(1 * time.Second)
			}
		}
	}
}

// Shutdown gracefully stops the worker, completing any in-flight batch.
// It implements server.ShutdownFunc for integration with graceful shutdown.
func (w *Worker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return nil
	}
	w.draining = true
	cancel := w.cancel
	done := w.done
	w.mu.Unlock()

	w.logger.Info("summary worker shutdown initiated")

	if cancel != nil {
		cancel()
	}

	if done != nil {
		select {
		case <-done:
			w.logger.Info("summary worker shutdown complete")
			return nil
		case <-ctx.Done():
			w.logger.Warn("summary worker shutdown timed out")
			return ctx.Err()
		}
	}
	return nil
}

// SetBatchSize overrides the default batch size.
func (w *Worker) SetBatchSize(size int) {
	if size > 0 {
		w.batchSize = size
	}
}

// SetBlockTimeout overrides the default blocking timeout.
func (w *Worker) SetBlockTimeout(timeout time.Duration) {
	if timeout > 0 {
		w.blockTimeout = timeout
	}
}

// SetClaimInterval overrides the default pending-claim interval.
func (w *Worker) SetClaimInterval(interval time.Duration) {
	if interval > 0 {
		w.claimInterval = interval
	}
}

// SetClaimIdle overrides the default pending idle threshold.
func (w *Worker) SetClaimIdle(idle time.Duration) {
	if idle > 0 {
		w.claimIdle = idle
	}
}

// ensureConsumerGroup creates the consumer group if it doesn't exist.
func (w *Worker) ensureConsumerGroup(ctx context.Context) error {
	err := w.redis.XGroupCreateMkStream(ctx, StreamKey, ConsumerGroup, "0").Err()
	if err != nil && !isConsumerGroupExistsError(err) {
		return err
	}
	return nil
}

// processOnce reads and processes a single batch.
func (w *Worker) processOnce(ctx context.Context) error {
	claimed, err := w.maybeClaimPending(ctx)
	if err != nil {
		w.logger.Warn("failed to claim pending messages", "error", err)
	}

	messages := claimed
	if len(messages) == 0 {
		messages, err = w.readBatch(ctx)
		if err != nil {
			return err
		}
	}

	if len(messages) == 0 {
		return nil
	}

	targets, messageIDs := w.parseMessages(ctx, messages)
	if len(targets) == 0 {
		// All messages were malformed, ACK them anyway to not block
		return w.ackMessages(ctx, messageIDs)
	}

	if err := w.processBatchWithRetry(ctx, targets); err != nil {
		w.logger.Error("batch processing failed after retries",
			"batch_size", len(targets),
			"error", err,
		)
		// Do not ACK so the messages can be retried later.
		return err
	}

	return w.ackMessages(ctx, messageIDs)
}

// maybeClaimPending checks for stuck pending messages and reclaims them.
func (w *Worker) maybeClaimPending(ctx context.Context) ([]redis.XMessage, error) {
	if w.claimInterval <= 0 || w.claimIdle <= 0 {
		return nil, nil
	}
	if !w.lastClaim.IsZero() && time.Since(w.lastClaim) < w.claimInterval {
		return nil, nil
	}

	w.lastClaim = time.Now()
	messages, start, err := w.redis.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   StreamKey,
		Group:    ConsumerGroup,
		Consumer: w.consumerID,
		MinIdle:  w.claimIdle,
		Start:    w.claimStartID,
		Count:    int64(w.batchSize),
	}).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("xautoclaim: %w", err)
	}
	if start != "" {
		w.claimStartID = start
	}
	return messages, nil
}

// readBatch reads messages from the stream using XREADGROUP.
func (w *Worker) readBatch(ctx context.Context) ([]redis.XMessage, error) {
	streams, err := w.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    ConsumerGroup,
		Consumer: w.consumerID,
		Streams:  []string{StreamKey, ">"},
		Count:    int64(w.batchSize),
		Block:    w.blockTimeout,
	}).Result()

	if err == redis.Nil || len(streams) == 0 {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("xreadgroup: %w", err)
	}

	return streams[0].Messages, nil
}

// recomputeTarget identifies one user's periods to recompute. Many events
// for the same user collapse into one target per batch.
type recomputeTarget struct {
	userID    string
	changedAt time.Time
}

// parseMessages converts Redis messages into deduplicated recompute targets.
// Malformed messages are moved to the dead-letter queue.
func (w *Worker) parseMessages(ctx context.Context, messages []redis.XMessage) ([]recomputeTarget, []string) {
	byUser := make(map[string]time.Time, len(messages))
	messageIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		messageIDs = append(messageIDs, msg.ID)

		payload, ok := msg.Values["payload"].(string)
		if !ok {
			w.deadLetterMessage(ctx, msg, "invalid_format", "payload field missing or not a string")
			continue
		}

		var event EntryEventPayload
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			w.deadLetterMessage(ctx, msg, "unmarshal_error", err.Error())
			continue
		}
		if event.UserID == "" {
			w.deadLetterMessage(ctx, msg, "validation_error", "missing user id")
			continue
		}

		changedAt := time.UnixMilli(event.ChangedAt).UTC()
		if existing, ok := byUser[event.UserID]; !ok || changedAt.After(existing) {
			byUser[event.UserID] = changedAt
		}
	}

	targets := make([]recomputeTarget, 0, len(byUser))
	for userID, changedAt := range byUser {
		targets = append(targets, recomputeTarget{userID: userID, changedAt: changedAt})
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].userID < targets[j].userID })

	return targets, messageIDs
}

// deadLetterMessage moves a poison message to the dead-letter queue.
func (w *Worker) deadLetterMessage(ctx context.Context, msg redis.XMessage, reason, detail string) {
	w.logger.Warn("dead-lettering poison message",
		"message_id", msg.ID,
		"reason", reason,
		"detail", detail,
	)

	_, err := w.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: DeadLetterStreamKey,
		MaxLen: 10000,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"original_id":      msg.ID,
			"original_stream":  StreamKey,
			"reason":           reason,
			"detail":           detail,
			"payload":          msg.Values["payload"],
			"dead_lettered_at": time.Now().UTC().Format(time.RFC3339),
		},
	}).Result()

	if err != nil {
		w.logger.Error("failed to write to dead-letter queue",
			"message_id", msg.ID,
			"error", err,
		)
	}
}

// processBatchWithRetry attempts to process a batch with exponential backoff.
func (w *Worker) processBatchWithRetry(ctx context.Context, targets []recomputeTarget) error {
	var lastErr error

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err := w.processBatch(ctx, targets); err != nil {
			lastErr = err
			backoff := time.Duration(1<<attempt) * time.Second
			w.logger.Warn("batch processing failed, retrying",
				"attempt", attempt,
				"backoff_seconds", backoff.Seconds(),
				"error", err,
			)
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			continue
		}
		return nil
	}

	return lastErr
}

// processBatch recomputes the weekly and monthly summaries touched by each
// target.
func (w *Worker) processBatch(ctx context.Context, targets []recomputeTarget) error {
	start := time.Now()

	for _, target := range targets {
		if err := w.recomputeUser(ctx, target.userID, target.changedAt); err != nil {
			w.metrics.IncSummaryRecomputed("failed")
			return fmt.Errorf("recompute user %s: %w", target.userID, err)
		}
		w.metrics.IncSummaryRecomputed("success")
	}

	w.logger.Info("batch processed",
		"users_count", len(targets),
		"duration_ms", float64(time.Since(start).Microseconds())/1000,
	)

	w.metrics.ObserveSummaryBatchSize(len(targets))
	w.metrics.ObserveSummaryBatchDuration(time.Since(start))

	return nil
}

// recomputeUser rebuilds the weekly and monthly summaries covering changedAt.
func (w *Worker) recomputeUser(ctx context.Context, userID string, changedAt time.Time) error {
	weekStart := WeekStart(changedAt)
	if err := w.recomputePeriod(ctx, userID, model.SummaryWeekly, weekStart, weekStart.AddDate(0, 0, 7)); err != nil {
		return err
	}

	monthStart := MonthStart(changedAt)
	return w.recomputePeriod(ctx, userID, model.SummaryMonthly, monthStart, monthStart.AddDate(0, 1, 0))
}

// recomputePeriod rebuilds one summary row from entry aggregates. A period
// left with no entries loses its row entirely.
func (w *Worker) recomputePeriod(ctx context.Context, userID string, period model.SummaryPeriod, from, to time.Time) error {
	agg, err := w.repo.AggregateEntries(ctx, userID, from, to)
	if err != nil {
		return fmt.Errorf("aggregate %s entries: %w", period, err)
	}

	if agg.EntryCount == 0 {
		if err := w.repo.DeleteSummary(ctx, userID, period, from); err != nil {
			return fmt.Errorf("delete empty %s summary: %w", period, err)
		}
		return nil
	}

	summary := &model.Summary{
		ID:          id.New("sum"),
		UserID:      userID,
		Period:      period,
		PeriodStart: from,
		MoodTrend:   model.MoodTrendFor(agg.AvgMoodScore),
		TopTags:     topTags(agg.TagCounts, TopTagsLimit),
		EntryCount:  agg.EntryCount,
		TotalWords:  agg.TotalWords,
		GeneratedAt: time.Now().UTC(),
	}

	if err := w.repo.UpsertSummary(ctx, summary); err != nil {
		return fmt.Errorf("upsert %s summary: %w", period, err)
	}

	return nil
}

// ackMessages acknowledges processed messages.
func (w *Worker) ackMessages(ctx context.Context, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	_, err := w.redis.XAck(ctx, StreamKey, ConsumerGroup, messageIDs...).Result()
	if err != nil {
		return fmt.Errorf("xack: %w", err)
	}

	return nil
}

// WeekStart returns 00:00 UTC of the Monday of t's ISO week.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

// MonthStart returns 00:00 UTC of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// topTags returns the most frequent tags, ties broken alphabetically.
func topTags(counts map[string]int, limit int) []string {
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// isConsumerGroupExistsError checks if the error is "BUSYGROUP" (group exists).
func isConsumerGroupExistsError(err error) bool {
	return err != nil && (err.Error() == "BUSYGROUP Consumer Group name already exists" ||
		err.Error() == "BUSYGROUP")
}
