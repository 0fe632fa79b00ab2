package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/handler/dto"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/service"
)

// GoalHandler manages goal endpoints.
type GoalHandler struct {
	goals  *service.GoalService
	logger *slog.Logger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goals *service.GoalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		goals:  goals,
		logger: logger,
	}
}

// Create handles goal creation.
//
// POST /api/v1/goals
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	goal, err := h.goals.CreateGoal(r.Context(), service.CreateGoalInput{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Priority:     model.GoalPriority(req.Priority),
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		TargetDate:   req.TargetDate,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("goal_created", "goal_id", goal.ID, "user_id", userID)
	writeData(w, http.StatusCreated, goal)
}

// Get returns a single goal.
//
// GET /api/v1/goals/{id}
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goals.GetGoal(r.Context(), auth.UserIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, goal)
}

// List returns the user's goals, highest priority first.
//
// GET /api/v1/goals?status=&category=
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	goals, err := h.goals.ListGoals(r.Context(), service.ListGoalsInput{
		UserID:   auth.UserIDFromContext(r.Context()),
		Status:   model.GoalStatus(q.Get("status")),
		Category: q.Get("category"),
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, goals)
}

// Update applies a partial patch to a goal.
//
// PUT /api/v1/goals/{id}
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	input := service.UpdateGoalInput{
		UserID:       auth.UserIDFromContext(r.Context()),
		GoalID:       chi.URLParam(r, "id"),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Progress:     req.Progress,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		TargetDate:   req.TargetDate,
	}
	if req.Status != nil {
		status := model.GoalStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := model.GoalPriority(*req.Priority)
		input.Priority = &priority
	}

	goal, err := h.goals.UpdateGoal(r.Context(), input)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("goal_updated", "goal_id", goal.ID, "user_id", input.UserID)
	writeData(w, http.StatusOK, goal)
}

// Delete removes a goal.
//
// DELETE /api/v1/goals/{id}
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	goalID := chi.URLParam(r, "id")

	if err := h.goals.DeleteGoal(r.Context(), userID, goalID); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("goal_deleted", "goal_id", goalID, "user_id", userID)
	writeMessage(w, http.StatusOK, "goal deleted successfully")
}

// Stats counts the user's goals by status.
//
// GET /api/v1/goals/stats
func (h *GoalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.goals.GoalStats(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, counts)
}
