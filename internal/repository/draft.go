package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/daybook/daybook/internal/model"
)

// Common errors for draft repository operations.
var (
	ErrDraftNotFound = errors.New("draft not found")
)

// GetDraft retrieves the user's draft, if any.
func (r *Repository) GetDraft(ctx context.Context, userID string) (*model.Draft, error) {
	query := `
		SELECT id, user_id, title, content, mood, mood_score, tags, created_at, updated_at
		FROM drafts
		WHERE user_id = $1
	`

	var draft model.Draft
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&draft.ID,
		&draft.UserID,
		&draft.Title,
		&draft.Content,
		&draft.Mood,
		&draft.MoodScore,
		pq.Array(&draft.Tags),
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	return &draft, nil
}

// UpsertDraft writes the user's draft, replacing any existing one. The
// one-draft-per-user rule is enforced by the UNIQUE(user_id) constraint:
// a second write updates in place rather than failing.
func (r *Repository) UpsertDraft(ctx context.Context, draft *model.Draft) error {
	query := `
		INSERT INTO drafts (id, user_id, title, content, mood, mood_score, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE
		SET title = EXCLUDED.title,
		    content = EXCLUDED.content,
		    mood = EXCLUDED.mood,
		    mood_score = EXCLUDED.mood_score,
		    tags = EXCLUDED.tags,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		draft.ID,
		draft.UserID,
		draft.Title,
		draft.Content,
		draft.Mood,
		draft.MoodScore,
		pq.Array(draft.Tags),
		draft.CreatedAt,
		draft.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}

	return nil
}

// DeleteDraft discards the user's draft.
func (r *Repository) DeleteDraft(ctx context.Context, userID string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM drafts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrDraftNotFound
	}

	return nil
}
