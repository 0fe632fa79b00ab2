package dto

import (
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/service"
)

// CreateEntryRequest represents the request body for creating an entry.
type CreateEntryRequest struct {
	Title      string   `json:"title" validate:"required,max=300"`
	Content    string   `json:"content" validate:"required"`
	Mood       string   `json:"mood,omitempty" validate:"max=50"`
	MoodScore  float64  `json:"mood_score,omitempty"`
	MoodImage  string   `json:"mood_image,omitempty" validate:"max=500"`
	Tags       []string `json:"tags,omitempty" validate:"max=20,dive,max=50"`
	IsFavorite bool     `json:"is_favorite,omitempty"`
	IsPrivate  bool     `json:"is_private,omitempty"`
}

// UpdateEntryRequest represents a partial entry patch. Absent fields leave
// the stored value untouched; tags distinguish absent from empty.
type UpdateEntryRequest struct {
	Title      *string  `json:"title,omitempty" validate:"omitempty,max=300"`
	Content    *string  `json:"content,omitempty"`
	Mood       *string  `json:"mood,omitempty" validate:"omitempty,max=50"`
	MoodScore  *float64 `json:"mood_score,omitempty"`
	MoodImage  *string  `json:"mood_image,omitempty" validate:"omitempty,max=500"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	IsFavorite *bool    `json:"is_favorite,omitempty"`
	IsPrivate  *bool    `json:"is_private,omitempty"`
}

// Meta provides page-number pagination info.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// EntryListResponse represents a paginated list of entries.
type EntryListResponse struct {
	Entries []*model.Entry `json:"entries"`
	Meta    Meta           `json:"meta"`
}

// ToEntryListResponse converts a service entry page to an EntryListResponse.
func ToEntryListResponse(page *service.EntryPage) *EntryListResponse {
	entries := page.Entries
	if entries == nil {
		entries = []*model.Entry{}
	}
	return &EntryListResponse{
		Entries: entries,
		Meta: Meta{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.Pages,
		},
	}
}
