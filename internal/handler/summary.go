package handler

import (
	"log/slog"
	"net/http"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/service"
)

// SummaryHandler serves precomputed periodic summaries.
type SummaryHandler struct {
	summaries *service.SummaryService
	logger    *slog.Logger
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaries *service.SummaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaries: summaries,
		logger:    logger,
	}
}

// List returns the user's summaries, newest first.
//
// GET /api/v1/summaries?period=weekly|monthly
func (h *SummaryHandler) List(w http.ResponseWriter, r *http.Request) {
	period := model.SummaryPeriod(r.URL.Query().Get("period"))

	summaries, err := h.summaries.ListSummaries(r.Context(), auth.UserIDFromContext(r.Context()), period)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, summaries)
}
