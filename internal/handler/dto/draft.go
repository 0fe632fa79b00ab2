package dto

// SaveDraftRequest represents the request body for saving a draft. Every
// field is optional; saving replaces whatever draft the user already had.
type SaveDraftRequest struct {
	Title     string   `json:"title,omitempty" validate:"max=300"`
	Content   string   `json:"content,omitempty"`
	Mood      string   `json:"mood,omitempty" validate:"max=50"`
	MoodScore *float64 `json:"mood_score,omitempty"`
	Tags      []string `json:"tags,omitempty" validate:"max=20,dive,max=50"`
}
