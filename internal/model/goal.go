package model

import "time"

// GoalStatus tracks the lifecycle of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalAbandoned GoalStatus = "abandoned"
)

// GoalPriority orders goals in listings.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// Goal is a user-defined objective tracked alongside journal entries.
type Goal struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Category     string       `json:"category"`
	Status       GoalStatus   `json:"status"`
	Priority     GoalPriority `json:"priority"`
	Progress     int          `json:"progress"` // 0-100
	TargetValue  *float64     `json:"target_value,omitempty"`
	CurrentValue *float64     `json:"current_value,omitempty"`
	TargetDate   *time.Time   `json:"target_date,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
