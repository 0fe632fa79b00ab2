package model

import "time"

// Draft is an in-progress, not-yet-published entry. A user has at most one;
// writing a new draft replaces the previous one.
type Draft struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	MoodScore *float64  `json:"mood_score,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
