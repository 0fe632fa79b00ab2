package model

import "time"

// SummaryPeriod is the aggregation window of a summary.
type SummaryPeriod string

const (
	SummaryWeekly  SummaryPeriod = "weekly"
	SummaryMonthly SummaryPeriod = "monthly"
)

// IsValid checks if the period is one of the known values.
func (p SummaryPeriod) IsValid() bool {
	return p == SummaryWeekly || p == SummaryMonthly
}

// Summary is a periodic aggregate over one user's entries, produced by the
// background summary worker. Read-only from the API surface.
type Summary struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Period      SummaryPeriod `json:"period"`
	PeriodStart time.Time     `json:"period_start"`
	MoodTrend   string        `json:"mood_trend"`
	TopTags     []string      `json:"top_tags"`
	EntryCount  int           `json:"entry_count"`
	TotalWords  int           `json:"total_words"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Mood trend buckets derived from the average mood score of a period.
const (
	MoodTrendLow       = "low"
	MoodTrendSteady    = "steady"
	MoodTrendImproving = "improving"
)

// MoodTrendFor buckets an average mood score into a trend label.
func MoodTrendFor(avgScore float64) string {
	switch {
	case avgScore < 2.5:
		return MoodTrendLow
	case avgScore > 3.5:
		return MoodTrendImproving
	default:
		return MoodTrendSteady
	}
}
