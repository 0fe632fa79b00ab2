// Package service provides business logic for the application.
package service

import "errors"

// Validation errors (HTTP 400).
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrContentRequired    = errors.New("content is required")
	ErrInvalidMoodScore   = errors.New("mood score must be a finite number")
	ErrInvalidQuoteType   = errors.New("quote type must be daily, weekly or monthly")
	ErrQuoteTextRequired  = errors.New("quote text is required")
	ErrInvalidDayOfWeek   = errors.New("day of week must be between 0 and 6")
	ErrInvalidPeriod      = errors.New("period must be weekly or monthly")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrNameRequired       = errors.New("name is required")
	ErrCategoryRequired   = errors.New("category is required")
	ErrTypeRequired       = errors.New("type is required")
	ErrInvalidGoalStatus  = errors.New("invalid goal status")
	ErrInvalidPriority    = errors.New("invalid goal priority")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
	ErrInvalidTimeframe   = errors.New("timeframe must be week, month or year")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
)

// Not-found errors (HTTP 404). A record owned by another user is reported
// identically to a record that does not exist.
var (
	ErrEntryNotFound     = errors.New("entry not found")
	ErrDraftNotFound     = errors.New("draft not found")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrUserNotFound      = errors.New("user not found")
)

// Auth errors.
var (
	// ErrEmailTaken indicates a registration conflict (HTTP 409).
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so login failures don't reveal which accounts exist (HTTP 401).
	ErrInvalidCredentials = errors.New("invalid email or password")
)
