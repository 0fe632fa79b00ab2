package model

import "time"

// QuoteType categorizes how often a quote rotates.
type QuoteType string

const (
	QuoteDaily   QuoteType = "daily"
	QuoteWeekly  QuoteType = "weekly"
	QuoteMonthly QuoteType = "monthly"
)

// IsValid checks if the quote type is one of the known values.
func (t QuoteType) IsValid() bool {
	return t == QuoteDaily || t == QuoteWeekly || t == QuoteMonthly
}

// Quote is an inspirational text record. Quotes are global, not owned by
// any user.
type Quote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	Type      QuoteType `json:"type"`
	Category  string    `json:"category,omitempty"`
	DayOfWeek *int      `json:"day_of_week,omitempty"` // 0=Sunday..6=Saturday, nil=any day
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FallbackQuote is returned by the daily-quote endpoint when no stored quote
// matches today's weekday or the any-day wildcard. Clients depend on this
// exact literal.
func FallbackQuote() *Quote {
	return &Quote{
		Text:     "The journey of a thousand miles begins with one step.",
		Author:   "Lao Tzu",
		Type:     QuoteDaily,
		Category: "motivation",
		IsActive: true,
	}
}
