package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook/daybook/internal/model"
)

// Common errors for goal repository operations.
var (
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalFilter defines filters for listing goals.
type GoalFilter struct {
	UserID   string
	Status   model.GoalStatus
	Category string
}

const goalColumns = `id, user_id, title, description, category, status, priority, progress, target_value, current_value, target_date, created_at, updated_at`

// CreateGoal inserts a new goal.
func (r *Repository) CreateGoal(ctx context.Context, goal *model.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Status,
		goal.Priority,
		goal.Progress,
		goal.TargetValue,
		goal.CurrentValue,
		goal.TargetDate,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	return nil
}

// GetGoal retrieves a goal by id, scoped to its owner.
func (r *Repository) GetGoal(ctx context.Context, userID, id string) (*model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	goal, err := scanGoal(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	return goal, nil
}

// ListGoals retrieves a user's goals ordered by priority then recency.
func (r *Repository) ListGoals(ctx context.Context, filter GoalFilter) ([]*model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1`
	args := []any{filter.UserID}
	argIndex := 2

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, filter.Category)
		argIndex++
	}

	query += `
		ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
		         created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []*model.Goal
	for rows.Next() {
		goal, err := scanGoalFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}

	return goals, nil
}

// UpdateGoal writes a goal's mutable fields, scoped to its owner.
func (r *Repository) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	query := `
		UPDATE goals
		SET title = $3, description = $4, category = $5, status = $6, priority = $7,
		    progress = $8, target_value = $9, current_value = $10, target_date = $11,
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Status,
		goal.Priority,
		goal.Progress,
		goal.TargetValue,
		goal.CurrentValue,
		goal.TargetDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// DeleteGoal removes a goal, scoped to its owner.
func (r *Repository) DeleteGoal(ctx context.Context, userID, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// CountGoalsByStatus groups a user's goals by status.
func (r *Repository) CountGoalsByStatus(ctx context.Context, userID string) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM goals WHERE user_id = $1 GROUP BY status`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan goal count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal counts: %w", err)
	}

	return counts, nil
}

func scanGoal(row pgx.Row) (*model.Goal, error) {
	var goal model.Goal
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.Description,
		&goal.Category,
		&goal.Status,
		&goal.Priority,
		&goal.Progress,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.TargetDate,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	return &goal, err
}

func scanGoalFromRows(rows pgx.Rows) (*model.Goal, error) {
	var goal model.Goal
	err := rows.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.Description,
		&goal.Category,
		&goal.Status,
		&goal.Priority,
		&goal.Progress,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.TargetDate,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	return &goal, err
}
