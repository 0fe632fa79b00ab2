package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daybook/daybook/internal/id"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// GoalStore is the persistence surface the goal service needs.
type GoalStore interface {
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoal(ctx context.Context, userID, id string) (*model.Goal, error)
	ListGoals(ctx context.Context, filter repository.GoalFilter) ([]*model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, userID, id string) error
	CountGoalsByStatus(ctx context.Context, userID string) (map[string]int64, error)
}

// GoalService handles user goal tracking.
type GoalService struct {
	store GoalStore
}

// NewGoalService creates a new GoalService.
func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store}
}

// CreateGoalInput defines input for creating a goal.
type CreateGoalInput struct {
	UserID       string
	Title        string
	Description  string
	Category     string
	Priority     model.GoalPriority
	TargetValue  *float64
	CurrentValue *float64
	TargetDate   *time.Time
}

// CreateGoal validates and persists a new goal. New goals start active with
// zero progress; an unset priority defaults to medium.
func (s *GoalService) CreateGoal(ctx context.Context, input CreateGoalInput) (*model.Goal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, ErrCategoryRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = model.GoalPriorityMedium
	}
	if priority != model.GoalPriorityLow && priority != model.GoalPriorityMedium && priority != model.GoalPriorityHigh {
		return nil, ErrInvalidPriority
	}

	now := time.Now().UTC()
	goal := &model.Goal{
		ID:           id.New("gol"),
		UserID:       input.UserID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Status:       model.GoalActive,
		Priority:     priority,
		Progress:     0,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		TargetDate:   input.TargetDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	return goal, nil
}

// GetGoal returns a goal only if it is owned by userID.
func (s *GoalService) GetGoal(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	goal, err := s.store.GetGoal(ctx, userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return goal, nil
}

// ListGoalsInput defines input for listing goals.
type ListGoalsInput struct {
	UserID   string
	Status   model.GoalStatus
	Category string
}

// ListGoals returns the user's goals ordered by priority then recency.
func (s *GoalService) ListGoals(ctx context.Context, input ListGoalsInput) ([]*model.Goal, error) {
	if input.Status != "" && !validGoalStatus(input.Status) {
		return nil, ErrInvalidGoalStatus
	}

	goals, err := s.store.ListGoals(ctx, repository.GoalFilter{
		UserID:   input.UserID,
		Status:   input.Status,
		Category: input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	if goals == nil {
		goals = []*model.Goal{}
	}
	return goals, nil
}

// UpdateGoalInput defines a partial goal patch.
type UpdateGoalInput struct {
	UserID       string
	GoalID       string
	Title        *string
	Description  *string
	Category     *string
	Status       *model.GoalStatus
	Priority     *model.GoalPriority
	Progress     *int
	TargetValue  *float64
	CurrentValue *float64
	TargetDate   *time.Time
}

// UpdateGoal applies a partial patch to an owned goal. Setting progress to
// 100 marks the goal completed; completing a goal pins progress at 100.
func (s *GoalService) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*model.Goal, error) {
	goal, err := s.store.GetGoal(ctx, input.UserID, input.GoalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("load goal for update: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.Category != nil {
		if strings.TrimSpace(*input.Category) == "" {
			return nil, ErrCategoryRequired
		}
		goal.Category = *input.Category
	}
	if input.Status != nil {
		if !validGoalStatus(*input.Status) {
			return nil, ErrInvalidGoalStatus
		}
		goal.Status = *input.Status
	}
	if input.Priority != nil {
		if *input.Priority != model.GoalPriorityLow && *input.Priority != model.GoalPriorityMedium && *input.Priority != model.GoalPriorityHigh {
			return nil, ErrInvalidPriority
		}
		goal.Priority = *input.Priority
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, ErrInvalidProgress
		}
		goal.Progress = *input.Progress
	}
	if input.TargetValue != nil {
		goal.TargetValue = input.TargetValue
	}
	if input.CurrentValue != nil {
		goal.CurrentValue = input.CurrentValue
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}

	if goal.Progress == 100 && goal.Status == model.GoalActive {
		goal.Status = model.GoalCompleted
	}
	if goal.Status == model.GoalCompleted {
		goal.Progress = 100
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateGoal(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("update goal: %w", err)
	}

	return goal, nil
}

// DeleteGoal removes an owned goal.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if err := s.store.DeleteGoal(ctx, userID, goalID); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}

// GoalStats counts a user's goals by status.
func (s *GoalService) GoalStats(ctx context.Context, userID string) (map[string]int64, error) {
	counts, err := s.store.CountGoalsByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count goals: %w", err)
	}
	return counts, nil
}

func validGoalStatus(status model.GoalStatus) bool {
	switch status {
	case model.GoalActive, model.GoalCompleted, model.GoalPaused, model.GoalAbandoned:
		return true
	}
	return false
}
