package model

import "time"

// Milestone is a countable achievement such as an entry streak or a word
// total. achieved_at is set once, on the first transition to achieved.
type Milestone struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Type         string     `json:"type"`
	TargetValue  *float64   `json:"target_value,omitempty"`
	CurrentValue *float64   `json:"current_value,omitempty"`
	Achieved     bool       `json:"achieved"`
	AchievedAt   *time.Time `json:"achieved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
