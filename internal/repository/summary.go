package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/daybook/daybook/internal/model"
)

// ListSummaries retrieves a user's summaries newest-first, optionally
// filtered by period type.
func (r *Repository) ListSummaries(ctx context.Context, userID string, period model.SummaryPeriod) ([]*model.Summary, error) {
	query := `
		SELECT id, user_id, period, period_start, mood_trend, top_tags, entry_count, total_words, generated_at
		FROM summaries
		WHERE user_id = $1
	`
	args := []any{userID}

	if period != "" {
		query += ` AND period = $2`
		args = append(args, period)
	}

	query += ` ORDER BY period_start DESC, period`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*model.Summary
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Period,
			&s.PeriodStart,
			&s.MoodTrend,
			pq.Array(&s.TopTags),
			&s.EntryCount,
			&s.TotalWords,
			&s.GeneratedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summaries: %w", err)
	}

	return summaries, nil
}

// UpsertSummary writes a summary row keyed on (user, period, period_start).
// The summary worker recomputes aggregates from scratch, so replacing the
// row wholesale is idempotent under at-least-once event delivery.
func (r *Repository) UpsertSummary(ctx context.Context, s *model.Summary) error {
	query := `
		INSERT INTO summaries (id, user_id, period, period_start, mood_trend, top_tags, entry_count, total_words, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, period, period_start) DO UPDATE
		SET mood_trend = EXCLUDED.mood_trend,
		    top_tags = EXCLUDED.top_tags,
		    entry_count = EXCLUDED.entry_count,
		    total_words = EXCLUDED.total_words,
		    generated_at = EXCLUDED.generated_at
	`

	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.UserID,
		s.Period,
		s.PeriodStart,
		s.MoodTrend,
		pq.Array(s.TopTags),
		s.EntryCount,
		s.TotalWords,
		s.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert summary: %w", err)
	}

	return nil
}

// DeleteSummary removes a summary row. Used when a period ends up with no
// entries after deletions.
func (r *Repository) DeleteSummary(ctx context.Context, userID string, period model.SummaryPeriod, periodStart time.Time) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM summaries WHERE user_id = $1 AND period = $2 AND period_start = $3`,
		userID, period, periodStart,
	)
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	return nil
}

// PeriodAggregate holds raw aggregates over a user's entries in a window,
// computed by query rather than from the denormalized counter.
type PeriodAggregate struct {
	EntryCount   int
	TotalWords   int
	AvgMoodScore float64
	TagCounts    map[string]int
}

// AggregateEntries computes entry count, word total, mean mood score and
// per-tag frequencies for a user's entries created in [from, to).
func (r *Repository) AggregateEntries(ctx context.Context, userID string, from, to time.Time) (*PeriodAggregate, error) {
	agg := &PeriodAggregate{TagCounts: make(map[string]int)}

	query := `
		SELECT COUNT(*), COALESCE(SUM(word_count), 0), COALESCE(AVG(mood_score), 0)
		FROM entries
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	`
	if err := r.pool.QueryRow(ctx, query, userID, from, to).Scan(
		&agg.EntryCount, &agg.TotalWords, &agg.AvgMoodScore,
	); err != nil {
		return nil, fmt.Errorf("failed to aggregate entries: %w", err)
	}

	if agg.EntryCount == 0 {
		return agg, nil
	}

	tagQuery := `
		SELECT tag, COUNT(*)
		FROM entries, UNNEST(tags) AS tag
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		GROUP BY tag
	`
	rows, err := r.pool.Query(ctx, tagQuery, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		var count int
		if err := rows.Scan(&tag, &count); err != nil {
			return nil, fmt.Errorf("failed to scan tag count: %w", err)
		}
		agg.TagCounts[tag] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag counts: %w", err)
	}

	return agg, nil
}
