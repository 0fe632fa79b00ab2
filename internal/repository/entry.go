package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/daybook/daybook/internal/model"
)

// Common errors for entry repository operations.
var (
	ErrEntryNotFound = errors.New("entry not found")
)

// EntryFilter defines filters for listing entries. UserID is mandatory:
// every entry query is scoped to its owner.
type EntryFilter struct {
	UserID     string
	Search     string // case-insensitive substring over title/content
	Mood       string // exact match
	IsFavorite *bool
}

const entryColumns = `id, user_id, title, content, mood, mood_score, mood_image, tags, is_favorite, is_private, word_count, reading_time, created_at, updated_at`

// CreateEntry inserts a new entry and increments the owner's total_entries
// counter in the same transaction, so the counter always reflects committed
// entries exactly.
func (r *Repository) CreateEntry(ctx context.Context, entry *model.Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	insert := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	if _, err := tx.Exec(ctx, insert,
		entry.ID,
		entry.UserID,
		entry.Title,
		entry.Content,
		entry.Mood,
		entry.MoodScore,
		entry.MoodImage,
		pq.Array(entry.Tags),
		entry.IsFavorite,
		entry.IsPrivate,
		entry.WordCount,
		entry.ReadingTime,
		entry.CreatedAt,
		entry.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET total_entries = total_entries + 1, updated_at = NOW() WHERE id = $1`,
		entry.UserID,
	); err != nil {
		return fmt.Errorf("failed to increment entry counter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit entry create: %w", err)
	}

	return nil
}

// GetEntry retrieves an entry by id, scoped to its owner. An entry that
// exists but belongs to another user is reported as ErrEntryNotFound so the
// API never leaks record existence across users.
func (r *Repository) GetEntry(ctx context.Context, userID, id string) (*model.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE id = $1 AND user_id = $2
	`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// ListEntries retrieves a page of entries newest-first, plus the total count
// matching the filter regardless of page.
func (r *Repository) ListEntries(ctx context.Context, filter EntryFilter, page, limit int) ([]*model.Entry, int64, error) {
	where := ` WHERE user_id = $1`
	args := []any{filter.UserID}
	argIndex := 2

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if filter.Mood != "" {
		where += fmt.Sprintf(" AND mood = $%d", argIndex)
		args = append(args, filter.Mood)
		argIndex++
	}

	if filter.IsFavorite != nil {
		where += fmt.Sprintf(" AND is_favorite = $%d", argIndex)
		args = append(args, *filter.IsFavorite)
		argIndex++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM entries`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	query := `SELECT ` + entryColumns + ` FROM entries` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.Entry
	for rows.Next() {
		entry, err := scanEntryFromRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, total, nil
}

// UpdateEntry writes an entry's mutable fields, scoped to its owner.
// The caller loads the row first and applies its partial patch, so a full
// write here preserves untouched fields.
func (r *Repository) UpdateEntry(ctx context.Context, entry *model.Entry) error {
	query := `
		UPDATE entries
		SET title = $3, content = $4, mood = $5, mood_score = $6, mood_image = $7,
		    tags = $8, is_favorite = $9, is_private = $10, word_count = $11,
		    reading_time = $12, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Title,
		entry.Content,
		entry.Mood,
		entry.MoodScore,
		entry.MoodImage,
		pq.Array(entry.Tags),
		entry.IsFavorite,
		entry.IsPrivate,
		entry.WordCount,
		entry.ReadingTime,
	)

	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteEntry removes an entry and decrements the owner's total_entries
// counter in the same transaction.
func (r *Repository) DeleteEntry(ctx context.Context, userID, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	result, err := tx.Exec(ctx, `DELETE FROM entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET total_entries = GREATEST(total_entries - 1, 0), updated_at = NOW() WHERE id = $1`,
		userID,
	); err != nil {
		return fmt.Errorf("failed to decrement entry counter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit entry delete: %w", err)
	}

	return nil
}

// scanEntry scans a single row into an Entry model.
func scanEntry(row pgx.Row) (*model.Entry, error) {
	var entry model.Entry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Content,
		&entry.Mood,
		&entry.MoodScore,
		&entry.MoodImage,
		pq.Array(&entry.Tags),
		&entry.IsFavorite,
		&entry.IsPrivate,
		&entry.WordCount,
		&entry.ReadingTime,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return &entry, err
}

// scanEntryFromRows scans a row from pgx.Rows into an Entry model.
func scanEntryFromRows(rows pgx.Rows) (*model.Entry, error) {
	var entry model.Entry
	err := rows.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Title,
		&entry.Content,
		&entry.Mood,
		&entry.MoodScore,
		&entry.MoodImage,
		pq.Array(&entry.Tags),
		&entry.IsFavorite,
		&entry.IsPrivate,
		&entry.WordCount,
		&entry.ReadingTime,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	return &entry, err
}
