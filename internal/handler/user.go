package handler

import (
	"log/slog"
	"net/http"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/handler/dto"
	"github.com/daybook/daybook/internal/service"
)

// UserHandler manages registration, login and profile endpoints.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// Register creates an account and returns it with an access token.
//
// POST /api/v1/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	result, err := h.users.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_registered", "user_id", result.User.ID)
	writeData(w, http.StatusCreated, dto.ToAuthResponse(result))
}

// Login verifies credentials and returns an access token.
//
// POST /api/v1/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		// Malformed login input is reported the same way as bad
		// credentials so probing reveals nothing.
		writeError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		return
	}

	result, err := h.users.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("user_logged_in", "user_id", result.User.ID)
	writeData(w, http.StatusOK, dto.ToAuthResponse(result))
}

// GetProfile returns the authenticated user's account.
//
// GET /api/v1/user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetProfile(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, user)
}

// UpdateProfile applies a partial patch to the authenticated user's profile.
//
// PUT /api/v1/user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := dto.Validate(req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	user, err := h.users.UpdateProfile(r.Context(), service.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("profile_updated", "user_id", userID)
	writeData(w, http.StatusOK, user)
}
