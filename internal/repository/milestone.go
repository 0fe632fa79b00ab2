package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook/daybook/internal/model"
)

// Common errors for milestone repository operations.
var (
	ErrMilestoneNotFound = errors.New("milestone not found")
)

const milestoneColumns = `id, user_id, title, description, type, target_value, current_value, achieved, achieved_at, created_at, updated_at`

// CreateMilestone inserts a new milestone.
func (r *Repository) CreateMilestone(ctx context.Context, m *model.Milestone) error {
	query := `
		INSERT INTO milestones (` + milestoneColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.Title,
		m.Description,
		m.Type,
		m.TargetValue,
		m.CurrentValue,
		m.Achieved,
		m.AchievedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create milestone: %w", err)
	}

	return nil
}

// GetMilestone retrieves a milestone by id, scoped to its owner.
func (r *Repository) GetMilestone(ctx context.Context, userID, id string) (*model.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = $1 AND user_id = $2`

	m, err := scanMilestone(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("failed to get milestone: %w", err)
	}

	return m, nil
}

// ListMilestones retrieves a user's milestones, unachieved first then
// newest. An achieved filter narrows to one side.
func (r *Repository) ListMilestones(ctx context.Context, userID string, achieved *bool) ([]*model.Milestone, error) {
	query := `SELECT ` + milestoneColumns + ` FROM milestones WHERE user_id = $1`
	args := []any{userID}

	if achieved != nil {
		query += ` AND achieved = $2`
		args = append(args, *achieved)
	}

	query += ` ORDER BY achieved, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	defer rows.Close()

	var milestones []*model.Milestone
	for rows.Next() {
		m, err := scanMilestoneFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milestones: %w", err)
	}

	return milestones, nil
}

// UpdateMilestone writes a milestone's mutable fields, scoped to its owner.
func (r *Repository) UpdateMilestone(ctx context.Context, m *model.Milestone) error {
	query := `
		UPDATE milestones
		SET title = $3, description = $4, current_value = $5, achieved = $6,
		    achieved_at = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.Title,
		m.Description,
		m.CurrentValue,
		m.Achieved,
		m.AchievedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}

// DeleteMilestone removes a milestone, scoped to its owner.
func (r *Repository) DeleteMilestone(ctx context.Context, userID, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM milestones WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}

func scanMilestone(row pgx.Row) (*model.Milestone, error) {
	var m model.Milestone
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Title,
		&m.Description,
		&m.Type,
		&m.TargetValue,
		&m.CurrentValue,
		&m.Achieved,
		&m.AchievedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return &m, err
}

func scanMilestoneFromRows(rows pgx.Rows) (*model.Milestone, error) {
	var m model.Milestone
	err := rows.Scan(
		&m.ID,
		&m.UserID,
		&m.Title,
		&m.Description,
		&m.Type,
		&m.TargetValue,
		&m.CurrentValue,
		&m.Achieved,
		&m.AchievedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return &m, err
}
