package model

import "testing"

func TestSummaryPeriod_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		period SummaryPeriod
		want   bool
	}{
		{SummaryWeekly, true},
		{SummaryMonthly, true},
		{SummaryPeriod("daily"), false},
		{SummaryPeriod(""), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.period), func(t *testing.T) {
			t.Parallel()

			if got := tt.period.IsValid(); got != tt.want {
				t.Errorf("SummaryPeriod(%q).IsValid() = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestMoodTrendFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		avgScore float64
		want     string
	}{
		{"very low", 1.0, MoodTrendLow},
		{"just under low boundary", 2.49, MoodTrendLow},
		{"low boundary is steady", 2.5, MoodTrendSteady},
		{"middle", 3.0, MoodTrendSteady},
		{"high boundary is steady", 3.5, MoodTrendSteady},
		{"just over high boundary", 3.51, MoodTrendImproving},
		{"very high", 5.0, MoodTrendImproving},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MoodTrendFor(tt.avgScore); got != tt.want {
				t.Errorf("MoodTrendFor(%v) = %q, want %q", tt.avgScore, got, tt.want)
			}
		})
	}
}
