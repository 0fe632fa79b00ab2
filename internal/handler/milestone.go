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

// MilestoneHandler manages milestone endpoints.
type MilestoneHandler struct {
	milestones *service.MilestoneService
	logger     *slog.Logger
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(milestones *service.MilestoneService, logger *slog.Logger) *MilestoneHandler {
	return &MilestoneHandler{
		milestones: milestones,
		logger:     logger,
	}
}

// Create handles milestone creation.
//
// POST /api/v1/milestones
func (h *MilestoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMilestoneRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	m, err := h.milestones.CreateMilestone(r.Context(), service.CreateMilestoneInput{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("milestone_created", "milestone_id", m.ID, "user_id", userID)
	writeData(w, http.StatusCreated, m)
}

// Get returns a single milestone.
//
// GET /api/v1/milestones/{id}
func (h *MilestoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.milestones.GetMilestone(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, m)
}

// List returns the user's milestones, unachieved first.
//
// GET /api/v1/milestones?achieved=
func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	var achieved *bool
	if v := r.URL.Query().Get("achieved"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "achieved must be a boolean")
			return
		}
		achieved = &parsed
	}

	milestones, err := h.milestones.ListMilestones(r.Context(), auth.UserIDFromContext(r.Context()), achieved)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, milestones)
}

// Update applies a partial patch to a milestone.
//
// PUT /api/v1/milestones/{id}
func (h *MilestoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateMilestoneRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	m, err := h.milestones.UpdateMilestone(r.Context(), service.UpdateMilestoneInput{
		UserID:       userID,
		MilestoneID:  chi.URLParam(r, "id"),
		Title:        req.Title,
		Description:  req.Description,
		CurrentValue: req.CurrentValue,
		Achieved:     req.Achieved,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("milestone_updated", "milestone_id", m.ID, "user_id", userID)
	writeData(w, http.StatusOK, m)
}

// Delete removes a milestone.
//
// DELETE /api/v1/milestones/{id}
func (h *MilestoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	milestoneID := chi.URLParam(r, "id")

	if err := h.milestones.DeleteMilestone(r.Context(), userID, milestoneID); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("milestone_deleted", "milestone_id", milestoneID, "user_id", userID)
	writeMessage(w, http.StatusOK, "milestone deleted successfully")
}
