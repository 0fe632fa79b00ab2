// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Entry lifecycle metrics
	IncEntryCreated()
	IncEntryUpdated()
	IncEntryDeleted()

	// Daily quote metrics
	IncQuoteCacheHit()
	IncQuoteCacheMiss()
	IncQuoteFallback()

	// Summary pipeline metrics
	IncSummaryEventPublished(status string) // status: "success" or "dropped"
	IncSummaryRecomputed(status string)     // status: "success" or "failed"
	ObserveSummaryBatchSize(size int)
	ObserveSummaryBatchDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
