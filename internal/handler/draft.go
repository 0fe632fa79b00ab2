package handler

import (
	"log/slog"
	"net/http"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/handler/dto"
	"github.com/daybook/daybook/internal/service"
)

// DraftHandler manages the user's single working draft.
type DraftHandler struct {
	drafts *service.DraftService
	logger *slog.Logger
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(drafts *service.DraftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{
		drafts: drafts,
		logger: logger,
	}
}

// Get returns the user's current draft.
//
// GET /api/v1/draft
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft, err := h.drafts.GetDraft(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, draft)
}

// Save replaces the user's draft with the request body.
//
// PUT /api/v1/draft
func (h *DraftHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	draft, err := h.drafts.SaveDraft(r.Context(), service.SaveDraftInput{
		UserID:    auth.UserIDFromContext(r.Context()),
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		MoodScore: req.MoodScore,
		Tags:      req.Tags,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, draft)
}

// Discard removes the user's draft.
//
// DELETE /api/v1/draft
func (h *DraftHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.DiscardDraft(r.Context(), auth.UserIDFromContext(r.Context())); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeMessage(w, http.StatusOK, "draft discarded successfully")
}
