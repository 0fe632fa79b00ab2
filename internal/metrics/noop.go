package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncEntryCreated is a no-op.
func (n *NoopRecorder) IncEntryCreated() {}

// IncEntryUpdated is a no-op.
func (n *NoopRecorder) IncEntryUpdated() {}

// IncEntryDeleted is a no-op.
func (n *NoopRecorder) IncEntryDeleted() {}

// IncQuoteCacheHit is a no-op.
func (n *NoopRecorder) IncQuoteCacheHit() {}

// IncQuoteCacheMiss is a no-op.
func (n *NoopRecorder) IncQuoteCacheMiss() {}

// IncQuoteFallback is a no-op.
func (n *NoopRecorder) IncQuoteFallback() {}

// IncSummaryEventPublished is a no-op.
func (n *NoopRecorder) IncSummaryEventPublished(status string) {}

// IncSummaryRecomputed is a no-op.
func (n *NoopRecorder) IncSummaryRecomputed(status string) {}

// ObserveSummaryBatchSize is a no-op.
func (n *NoopRecorder) ObserveSummaryBatchSize(size int) {}

// ObserveSummaryBatchDuration is a no-op.
func (n *NoopRecorder) ObserveSummaryBatchDuration(duration time.Duration) {}
