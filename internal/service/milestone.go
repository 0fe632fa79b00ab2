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

// MilestoneStore is the persistence surface the milestone service needs.
type MilestoneStore interface {
	CreateMilestone(ctx context.Context, m *model.Milestone) error
	GetMilestone(ctx context.Context, userID, id string) (*model.Milestone, error)
	ListMilestones(ctx context.Context, userID string, achieved *bool) ([]*model.Milestone, error)
	UpdateMilestone(ctx context.Context, m *model.Milestone) error
	DeleteMilestone(ctx context.Context, userID, id string) error
}

// MilestoneService handles countable achievements.
type MilestoneService struct {
	store MilestoneStore
}

// NewMilestoneService creates a new MilestoneService.
func NewMilestoneService(store MilestoneStore) *MilestoneService {
	return &MilestoneService{store: store}
}

// CreateMilestoneInput defines input for creating a milestone.
type CreateMilestoneInput struct {
	UserID       string
	Title        string
	Description  string
	Type         string
	TargetValue  *float64
	CurrentValue *float64
}

// CreateMilestone validates and persists a new milestone.
func (s *MilestoneService) CreateMilestone(ctx context.Context, input CreateMilestoneInput) (*model.Milestone, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Type) == "" {
		return nil, ErrTypeRequired
	}

	now := time.Now().UTC()
	m := &model.Milestone{
		ID:           id.New("mls"),
		UserID:       input.UserID,
		Title:        input.Title,
		Description:  input.Description,
		Type:         input.Type,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateMilestone(ctx, m); err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}

	return m, nil
}

// GetMilestone returns a milestone only if it is owned by userID.
func (s *MilestoneService) GetMilestone(ctx context.Context, userID, milestoneID string) (*model.Milestone, error) {
	m, err := s.store.GetMilestone(ctx, userID, milestoneID)
	if err != nil {
		if errors.Is(err, repository.ErrMilestoneNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	return m, nil
}

// ListMilestones returns the user's milestones, unachieved first.
func (s *MilestoneService) ListMilestones(ctx context.Context, userID string, achieved *bool) ([]*model.Milestone, error) {
	milestones, err := s.store.ListMilestones(ctx, userID, achieved)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	if milestones == nil {
		milestones = []*model.Milestone{}
	}
	return milestones, nil
}

// UpdateMilestoneInput defines a partial milestone patch.
type UpdateMilestoneInput struct {
	UserID       string
	MilestoneID  string
	Title        *string
	Description  *string
	CurrentValue *float64
	Achieved     *bool
}

// UpdateMilestone applies a partial patch to an owned milestone. The first
// transition to achieved stamps achieved_at; reverting clears it. When both
// values are known, reaching the target marks the milestone achieved.
func (s *MilestoneService) UpdateMilestone(ctx context.Context, input UpdateMilestoneInput) (*model.Milestone, error) {
	m, err := s.store.GetMilestone(ctx, input.UserID, input.MilestoneID)
	if err != nil {
		if errors.Is(err, repository.ErrMilestoneNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("load milestone for update: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		m.Title = *input.Title
	}
	if input.Description != nil {
		m.Description = *input.Description
	}
	if input.CurrentValue != nil {
		m.CurrentValue = input.CurrentValue
	}
	if input.Achieved != nil {
		m.Achieved = *input.Achieved
	}

	if !m.Achieved && m.TargetValue != nil && m.CurrentValue != nil && *m.CurrentValue >= *m.TargetValue {
		m.Achieved = true
	}

	now := time.Now().UTC()
	if m.Achieved && m.AchievedAt == nil {
		m.AchievedAt = &now
	}
	if !m.Achieved {
		m.AchievedAt = nil
	}
	m.UpdatedAt = now

	if err := s.store.UpdateMilestone(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMilestoneNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("update milestone: %w", err)
	}

	return m, nil
}

// DeleteMilestone removes an owned milestone.
func (s *MilestoneService) DeleteMilestone(ctx context.Context, userID, milestoneID string) error {
	if err := s.store.DeleteMilestone(ctx, userID, milestoneID); err != nil {
		if errors.Is(err, repository.ErrMilestoneNotFound) {
			return ErrMilestoneNotFound
		}
		return fmt.Errorf("delete milestone: %w", err)
	}
	return nil
}
