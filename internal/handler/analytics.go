package handler

import (
	"log/slog"
	"net/http"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/service"
)

// AnalyticsHandler serves on-demand journaling statistics.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	logger    *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics *service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		logger:    logger,
	}
}

// Overview returns entry totals plus mood and goal distributions.
//
// GET /api/v1/analytics?timeframe=week|month|year
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.GetOverview(r.Context(),
		auth.UserIDFromContext(r.Context()), r.URL.Query().Get("timeframe"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, overview)
}
