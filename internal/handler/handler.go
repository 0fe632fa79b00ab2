// Package handler provides HTTP request handlers.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daybook/daybook/internal/handler/dto"
	"github.com/daybook/daybook/internal/service"
)

// envelope is the uniform response shape. Success responses carry data,
// failures carry a message.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// writeData writes a success envelope with the given status code.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeMessage writes a success envelope carrying only a message. Used by
// delete endpoints, which confirm with 200 rather than 204.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

// writeError writes a failure envelope with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already sent; nothing useful left to do.
		_ = err
	}
}

// decodeJSON decodes a request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// NotFound handles 404 responses for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "resource not found")
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// handleServiceError maps service errors onto HTTP status codes. Unknown
// errors are logged and reported as a generic 500 so internals never leak.
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrInvalidMoodScore),
		errors.Is(err, service.ErrInvalidQuoteType),
		errors.Is(err, service.ErrQuoteTextRequired),
		errors.Is(err, service.ErrInvalidDayOfWeek),
		errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrTypeRequired),
		errors.Is(err, service.ErrInvalidGoalStatus),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrInvalidProgress),
		errors.Is(err, service.ErrInvalidTimeframe),
		errors.Is(err, service.ErrNoFieldsToUpdate):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrEntryNotFound),
		errors.Is(err, service.ErrDraftNotFound),
		errors.Is(err, service.ErrGoalNotFound),
		errors.Is(err, service.ErrMilestoneNotFound),
		errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "request timed out")

	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
