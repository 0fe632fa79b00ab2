package service

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook/daybook/internal/repository"
)

// AnalyticsStore is the persistence surface the analytics service needs.
// All figures are computed by query so they never drift from the entries
// table.
type AnalyticsStore interface {
	GetEntryStats(ctx context.Context, userID string, since time.Time) (*repository.EntryStats, error)
	CountMoods(ctx context.Context, userID string, since time.Time) (map[string]int64, error)
	CountGoalsByStatus(ctx context.Context, userID string) (map[string]int64, error)
}

// Timeframe windows for analytics queries.
const (
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
	TimeframeYear  = "year"
)

// AnalyticsService computes on-demand journaling statistics.
type AnalyticsService struct {
	store AnalyticsStore
	now   func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{
		store: store,
		now:   time.Now,
	}
}

// Overview is a user's journaling activity for a timeframe.
type Overview struct {
	Timeframe     string           `json:"timeframe"`
	TotalEntries  int64            `json:"total_entries"`
	RecentEntries int64            `json:"recent_entries"`
	TotalWords    int64            `json:"total_words"`
	MoodCounts    map[string]int64 `json:"mood_counts"`
	GoalCounts    map[string]int64 `json:"goal_counts"`
}

// GetOverview computes totals plus mood and goal distributions for a
// timeframe. The default timeframe is a month.
func (s *AnalyticsService) GetOverview(ctx context.Context, userID, timeframe string) (*Overview, error) {
	if timeframe == "" {
		timeframe = TimeframeMonth
	}

	since, err := s.windowStart(timeframe)
	if err != nil {
		return nil, err
	}

	stats, err := s.store.GetEntryStats(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("entry stats: %w", err)
	}

	moods, err := s.store.CountMoods(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("mood counts: %w", err)
	}

	goals, err := s.store.CountGoalsByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("goal counts: %w", err)
	}

	return &Overview{
		Timeframe:     timeframe,
		TotalEntries:  stats.TotalEntries,
		RecentEntries: stats.RecentEntries,
		TotalWords:    stats.TotalWords,
		MoodCounts:    moods,
		GoalCounts:    goals,
	}, nil
}

func (s *AnalyticsService) windowStart(timeframe string) (time.Time, error) {
	now := s.now().UTC()
	switch timeframe {
	case TimeframeWeek:
		return now.AddDate(0, 0, -7), nil
	case TimeframeMonth:
		return now.AddDate(0, -1, 0), nil
	case TimeframeYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, ErrInvalidTimeframe
	}
}
