package repository

import (
	"context"
	"fmt"
	"time"
)

// EntryStats are query-computed entry totals for a user. Counts come from
// the entries table itself, not the denormalized user counter, so they stay
// correct even if the counter drifts.
type EntryStats struct {
	TotalEntries  int64
	RecentEntries int64
	TotalWords    int64
}

// GetEntryStats computes all-time and windowed entry totals for a user.
func (r *Repository) GetEntryStats(ctx context.Context, userID string, since time.Time) (*EntryStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at >= $2),
		       COALESCE(SUM(word_count), 0)
		FROM entries
		WHERE user_id = $1
	`

	var stats EntryStats
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(
		&stats.TotalEntries,
		&stats.RecentEntries,
		&stats.TotalWords,
	); err != nil {
		return nil, fmt.Errorf("failed to get entry stats: %w", err)
	}

	return &stats, nil
}

// CountMoods groups a user's entries by mood within a window.
func (r *Repository) CountMoods(ctx context.Context, userID string, since time.Time) (map[string]int64, error) {
	query := `
		SELECT mood, COUNT(*)
		FROM entries
		WHERE user_id = $1 AND created_at >= $2 AND mood <> ''
		GROUP BY mood
	`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count moods: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var mood string
		var count int64
		if err := rows.Scan(&mood, &count); err != nil {
			return nil, fmt.Errorf("failed to scan mood count: %w", err)
		}
		counts[mood] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mood counts: %w", err)
	}

	return counts, nil
}
