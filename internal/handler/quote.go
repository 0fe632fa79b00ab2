package handler

import (
	"log/slog"
	"net/http"

	"github.com/daybook/daybook/internal/handler/dto"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/service"
)

// QuoteHandler manages quote endpoints.
type QuoteHandler struct {
	quotes *service.QuoteService
	logger *slog.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quotes *service.QuoteService, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		logger: logger,
	}
}

// Daily returns the quote of the day. Always succeeds; when no stored quote
// matches, the built-in fallback is served.
//
// GET /api/v1/quotes/daily
func (h *QuoteHandler) Daily(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.DailyQuote(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, quote)
}

// Create adds a quote to the rotation.
//
// POST /api/v1/quotes
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	quote, err := h.quotes.CreateQuote(r.Context(), service.CreateQuoteInput{
		Text:      req.Text,
		Author:    req.Author,
		Type:      model.QuoteType(req.Type),
		Category:  req.Category,
		DayOfWeek: req.DayOfWeek,
		IsActive:  req.IsActive == nil || *req.IsActive,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("quote_created", "quote_id", quote.ID)
	writeData(w, http.StatusCreated, quote)
}
