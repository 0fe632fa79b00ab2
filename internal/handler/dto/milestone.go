package dto

// CreateMilestoneRequest represents the request body for creating a milestone.
type CreateMilestoneRequest struct {
	Title        string   `json:"title" validate:"required,max=300"`
	Description  string   `json:"description,omitempty" validate:"max=2000"`
	Type         string   `json:"type" validate:"required,max=100"`
	TargetValue  *float64 `json:"target_value,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
}

// UpdateMilestoneRequest represents a partial milestone patch.
type UpdateMilestoneRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,max=300"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	Achieved     *bool    `json:"achieved,omitempty"`
}
