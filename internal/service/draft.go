package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/daybook/daybook/internal/id"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// DraftStore is the persistence surface the draft service needs.
type DraftStore interface {
	GetDraft(ctx context.Context, userID string) (*model.Draft, error)
	UpsertDraft(ctx context.Context, draft *model.Draft) error
	DeleteDraft(ctx context.Context, userID string) error
}

// DraftService handles the single in-progress draft each user may hold.
type DraftService struct {
	store DraftStore
}

// NewDraftService creates a new DraftService.
func NewDraftService(store DraftStore) *DraftService {
	return &DraftService{store: store}
}

// GetDraft returns the user's draft, or ErrDraftNotFound when none exists.
func (s *DraftService) GetDraft(ctx context.Context, userID string) (*model.Draft, error) {
	draft, err := s.store.GetDraft(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return draft, nil
}

// SaveDraftInput defines input for saving a draft. All fields except UserID
// are optional: an empty draft is a valid placeholder.
type SaveDraftInput struct {
	UserID    string
	Title     string
	Content   string
	Mood      string
	MoodScore *float64
	Tags      []string
}

// SaveDraft writes the user's draft, replacing any previous one. A second
// save keeps the original created_at so the draft's age survives autosaves.
func (s *DraftService) SaveDraft(ctx context.Context, input SaveDraftInput) (*model.Draft, error) {
	if input.MoodScore != nil && (math.IsNaN(*input.MoodScore) || math.IsInf(*input.MoodScore, 0)) {
		return nil, ErrInvalidMoodScore
	}

	now := time.Now().UTC()
	draft := &model.Draft{
		ID:        id.New("dft"),
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		Mood:      input.Mood,
		MoodScore: input.MoodScore,
		Tags:      normalizeTags(input.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if existing, err := s.store.GetDraft(ctx, input.UserID); err == nil {
		draft.ID = existing.ID
		draft.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, repository.ErrDraftNotFound) {
		return nil, fmt.Errorf("load existing draft: %w", err)
	}

	if err := s.store.UpsertDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	return draft, nil
}

// DiscardDraft removes the user's draft.
func (s *DraftService) DiscardDraft(ctx context.Context, userID string) error {
	if err := s.store.DeleteDraft(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		return fmt.Errorf("discard draft: %w", err)
	}
	return nil
}
