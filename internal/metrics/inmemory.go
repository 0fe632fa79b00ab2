package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	EntriesCreated            uint64
	EntriesUpdated            uint64
	EntriesDeleted            uint64
	QuoteCacheHits            uint64
	QuoteCacheMisses          uint64
	QuoteFallbacks            uint64
	SummaryEventsPublished    uint64
	SummaryEventsDropped      uint64
	SummariesRecomputed       uint64
	SummariesFailed           uint64
	SummaryBatchCount         uint64
	SummaryBatchTotalSize     uint64
	SummaryBatchTotalDuration int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	entriesCreated            uint64
	entriesUpdated            uint64
	entriesDeleted            uint64
	quoteCacheHits            uint64
	quoteCacheMisses          uint64
	quoteFallbacks            uint64
	summaryEventsPublished    uint64
	summaryEventsDropped      uint64
	summariesRecomputed       uint64
	summariesFailed           uint64
	summaryBatchCount         uint64
	summaryBatchTotalSize     uint64
	summaryBatchTotalDuration int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		EntriesCreated:            atomic.LoadUint64(&m.entriesCreated),
		EntriesUpdated:            atomic.LoadUint64(&m.entriesUpdated),
		EntriesDeleted:            atomic.LoadUint64(&m.entriesDeleted),
		QuoteCacheHits:            atomic.LoadUint64(&m.quoteCacheHits),
		QuoteCacheMisses:          atomic.LoadUint64(&m.quoteCacheMisses),
		QuoteFallbacks:            atomic.LoadUint64(&m.quoteFallbacks),
		SummaryEventsPublished:    atomic.LoadUint64(&m.summaryEventsPublished),
		SummaryEventsDropped:      atomic.LoadUint64(&m.summaryEventsDropped),
		SummariesRecomputed:       atomic.LoadUint64(&m.summariesRecomputed),
		SummariesFailed:           atomic.LoadUint64(&m.summariesFailed),
		SummaryBatchCount:         atomic.LoadUint64(&m.summaryBatchCount),
		SummaryBatchTotalSize:     atomic.LoadUint64(&m.summaryBatchTotalSize),
		SummaryBatchTotalDuration: atomic.LoadInt64(&m.summaryBatchTotalDuration),
	}
}

// IncEntryCreated increments the entry created counter.
func (m *InMemoryRecorder) IncEntryCreated() {
	atomic.AddUint64(&m.entriesCreated, 1)
}

// IncEntryUpdated increments the entry updated counter.
func (m *InMemoryRecorder) IncEntryUpdated() {
	atomic.AddUint64(&m.entriesUpdated, 1)
}

// IncEntryDeleted increments the entry deleted counter.
func (m *InMemoryRecorder) IncEntryDeleted() {
	atomic.AddUint64(&m.entriesDeleted, 1)
}

// IncQuoteCacheHit increments the quote cache hit counter.
func (m *InMemoryRecorder) IncQuoteCacheHit() {
	atomic.AddUint64(&m.quoteCacheHits, 1)
}

// IncQuoteCacheMiss increments the quote cache miss counter.
func (m *InMemoryRecorder) IncQuoteCacheMiss() {
	atomic.AddUint64(&m.quoteCacheMisses, 1)
}

// IncQuoteFallback counts servings of the hardcoded fallback quote.
func (m *InMemoryRecorder) IncQuoteFallback() {
	atomic.AddUint64(&m.quoteFallbacks, 1)
}

// IncSummaryEventPublished counts published entry events by status.
func (m *InMemoryRecorder) IncSummaryEventPublished(status string) {
	if status == "success" {
		atomic.AddUint64(&m.summaryEventsPublished, 1)
	} else {
		atomic.AddUint64(&m.summaryEventsDropped, 1)
	}
}

// IncSummaryRecomputed counts summary recomputations by status.
func (m *InMemoryRecorder) IncSummaryRecomputed(status string) {
	if status == "success" {
		atomic.AddUint64(&m.summariesRecomputed, 1)
	} else {
		atomic.AddUint64(&m.summariesFailed, 1)
	}
}

// ObserveSummaryBatchSize records a processed batch size.
func (m *InMemoryRecorder) ObserveSummaryBatchSize(size int) {
	atomic.AddUint64(&m.summaryBatchCount, 1)
	atomic.AddUint64(&m.summaryBatchTotalSize, uint64(size))
}

// ObserveSummaryBatchDuration records a batch processing duration.
func (m *InMemoryRecorder) ObserveSummaryBatchDuration(duration time.Duration) {
	atomic.AddInt64(&m.summaryBatchTotalDuration, duration.Nanoseconds())
}
