package handler

import (
	"fmt"
	"net/http"

	"github.com/daybook/daybook/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "daybook_entries_created_total %d\n", snap.EntriesCreated)
	writeMetric(w, "daybook_entries_updated_total %d\n", snap.EntriesUpdated)
	writeMetric(w, "daybook_entries_deleted_total %d\n", snap.EntriesDeleted)

	writeMetric(w, "daybook_quote_cache_hits_total %d\n", snap.QuoteCacheHits)
	writeMetric(w, "daybook_quote_cache_misses_total %d\n", snap.QuoteCacheMisses)
	writeMetric(w, "daybook_quote_fallbacks_total %d\n", snap.QuoteFallbacks)

	writeMetric(w, "daybook_summary_events_published_total{status=\"success\"} %d\n", snap.SummaryEventsPublished)
	writeMetric(w, "daybook_summary_events_published_total{status=\"dropped\"} %d\n", snap.SummaryEventsDropped)

	writeMetric(w, "daybook_summaries_recomputed_total{status=\"success\"} %d\n", snap.SummariesRecomputed)
	writeMetric(w, "daybook_summaries_recomputed_total{status=\"failed\"} %d\n", snap.SummariesFailed)

	writeMetric(w, "daybook_summary_batches_total %d\n", snap.SummaryBatchCount)
	writeMetric(w, "daybook_summary_batch_size_sum %d\n", snap.SummaryBatchTotalSize)
	writeMetric(w, "daybook_summary_batch_duration_seconds_count %d\n", snap.SummaryBatchCount)
	writeMetric(w, "daybook_summary_batch_duration_seconds_sum %.6f\n", float64(snap.SummaryBatchTotalDuration)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
