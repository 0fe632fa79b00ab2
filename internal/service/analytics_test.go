package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/repository"
)

type fakeAnalyticsStore struct {
	stats     *repository.EntryStats
	moods     map[string]int64
	goals     map[string]int64
	lastSince time.Time
}

func (f *fakeAnalyticsStore) GetEntryStats(_ context.Context, _ string, since time.Time) (*repository.EntryStats, error) {
	f.lastSince = since
	return f.stats, nil
}

func (f *fakeAnalyticsStore) CountMoods(_ context.Context, _ string, _ time.Time) (map[string]int64, error) {
	return f.moods, nil
}

func (f *fakeAnalyticsStore) CountGoalsByStatus(_ context.Context, _ string) (map[string]int64, error) {
	return f.goals, nil
}

func TestGetOverview(t *testing.T) {
	t.Parallel()
	store := &fakeAnalyticsStore{
		stats: &repository.EntryStats{TotalEntries: 40, RecentEntries: 7, TotalWords: 12000},
		moods: map[string]int64{"happy": 5, "calm": 2},
		goals: map[string]int64{"active": 3, "completed": 1},
	}
	svc := NewAnalyticsService(store)

	overview, err := svc.GetOverview(context.Background(), "usr-1", TimeframeWeek)
	if err != nil {
		t.Fatalf("GetOverview() error = %v", err)
	}

	if overview.TotalEntries != 40 || overview.RecentEntries != 7 || overview.TotalWords != 12000 {
		t.Errorf("overview totals = %+v, want store figures", overview)
	}
	if overview.MoodCounts["happy"] != 5 {
		t.Errorf("MoodCounts[happy] = %d, want 5", overview.MoodCounts["happy"])
	}
	if overview.GoalCounts["active"] != 3 {
		t.Errorf("GoalCounts[active] = %d, want 3", overview.GoalCounts["active"])
	}
}

func TestGetOverviewWindows(t *testing.T) {
	t.Parallel()
	store := &fakeAnalyticsStore{stats: &repository.EntryStats{}, moods: map[string]int64{}}
	svc := NewAnalyticsService(store)

	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	tests := []struct {
		timeframe string
		wantSince time.Time
	}{
		{TimeframeWeek, fixed.AddDate(0, 0, -7)},
		{TimeframeMonth, fixed.AddDate(0, -1, 0)},
		{TimeframeYear, fixed.AddDate(-1, 0, 0)},
		{"", fixed.AddDate(0, -1, 0)}, // defaults to month
	}

	for _, tt := range tests {
		if _, err := svc.GetOverview(context.Background(), "usr-1", tt.timeframe); err != nil {
			t.Fatalf("GetOverview(%q) error = %v", tt.timeframe, err)
		}
		if !store.lastSince.Equal(tt.wantSince) {
			t.Errorf("timeframe %q since = %v, want %v", tt.timeframe, store.lastSince, tt.wantSince)
		}
	}
}

func TestGetOverviewInvalidTimeframe(t *testing.T) {
	t.Parallel()
	svc := NewAnalyticsService(&fakeAnalyticsStore{})

	if _, err := svc.GetOverview(context.Background(), "usr-1", "decade"); !errors.Is(err, ErrInvalidTimeframe) {
		t.Errorf("GetOverview() error = %v, want ErrInvalidTimeframe", err)
	}
}
