package dto

import "time"

// CreateGoalRequest represents the request body for creating a goal.
type CreateGoalRequest struct {
	Title        string     `json:"title" validate:"required,max=300"`
	Description  string     `json:"description,omitempty" validate:"max=2000"`
	Category     string     `json:"category" validate:"required,max=100"`
	Priority     string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	TargetValue  *float64   `json:"target_value,omitempty"`
	CurrentValue *float64   `json:"current_value,omitempty"`
	TargetDate   *time.Time `json:"target_date,omitempty"`
}

// UpdateGoalRequest represents a partial goal patch.
type UpdateGoalRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,max=300"`
	Description  *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category     *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=active completed paused abandoned"`
	Priority     *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Progress     *int       `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
	TargetValue  *float64   `json:"target_value,omitempty"`
	CurrentValue *float64   `json:"current_value,omitempty"`
	TargetDate   *time.Time `json:"target_date,omitempty"`
}
