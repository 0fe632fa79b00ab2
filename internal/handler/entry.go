package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/handler/dto"
	"github.com/daybook/daybook/internal/service"
)

// EntryHandler manages journal entry endpoints.
type EntryHandler struct {
	entries *service.EntryService
	logger  *slog.Logger
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entries *service.EntryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		entries: entries,
		logger:  logger,
	}
}

// Create handles entry creation.
//
// POST /api/v1/entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	entry, err := h.entries.CreateEntry(r.Context(), service.CreateEntryInput{
		UserID:     userID,
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		MoodScore:  req.MoodScore,
		MoodImage:  req.MoodImage,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
		IsPrivate:  req.IsPrivate,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("entry_created", "entry_id", entry.ID, "user_id", userID)
	writeData(w, http.StatusCreated, entry)
}

// Get returns a single entry.
//
// GET /api/v1/entries/{id}
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	entryID := chi.URLParam(r, "id")

	entry, err := h.entries.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, entry)
}

// List returns a page of the user's entries, newest first.
//
// GET /api/v1/entries?page=&limit=&search=&mood=&is_favorite=
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := service.ListEntriesInput{
		UserID: auth.UserIDFromContext(r.Context()),
		Search: q.Get("search"),
		Mood:   q.Get("mood"),
	}
	if v := q.Get("page"); v != "" {
		input.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		input.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("is_favorite"); v != "" {
		fav, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "is_favorite must be a boolean")
			return
		}
		input.IsFavorite = &fav
	}

	page, err := h.entries.ListEntries(r.Context(), input)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, dto.ToEntryListResponse(page))
}

// Update applies a partial patch to an entry.
//
// PUT /api/v1/entries/{id}
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	entry, err := h.entries.UpdateEntry(r.Context(), service.UpdateEntryInput{
		UserID:     userID,
		EntryID:    chi.URLParam(r, "id"),
		Title:      req.Title,
		Content:    req.Content,
		Mood:       req.Mood,
		MoodScore:  req.MoodScore,
		MoodImage:  req.MoodImage,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
		IsPrivate:  req.IsPrivate,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("entry_updated", "entry_id", entry.ID, "user_id", userID)
	writeData(w, http.StatusOK, entry)
}

// Delete removes an entry.
//
// DELETE /api/v1/entries/{id}
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	entryID := chi.URLParam(r, "id")

	if err := h.entries.DeleteEntry(r.Context(), userID, entryID); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("entry_deleted", "entry_id", entryID, "user_id", userID)
	writeMessage(w, http.StatusOK, "entry deleted successfully")
}
