package dto

// CreateQuoteRequest represents the request body for adding a quote.
type CreateQuoteRequest struct {
	Text      string `json:"text" validate:"required,max=1000"`
	Author    string `json:"author,omitempty" validate:"max=200"`
	Type      string `json:"type" validate:"required,oneof=daily weekly monthly"`
	Category  string `json:"category,omitempty" validate:"max=100"`
	DayOfWeek *int   `json:"day_of_week,omitempty" validate:"omitempty,gte=0,lte=6"`
	// A new quote joins the rotation unless the caller opts out.
	IsActive *bool `json:"is_active,omitempty"`
}
