package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/daybook/daybook/internal/id"
	"github.com/daybook/daybook/internal/metrics"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// Listing limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// EntryStore is the persistence surface the entry service needs.
// *repository.Repository satisfies it; tests substitute a fake.
type EntryStore interface {
	CreateEntry(ctx context.Context, entry *model.Entry) error
	GetEntry(ctx context.Context, userID, id string) (*model.Entry, error)
	ListEntries(ctx context.Context, filter repository.EntryFilter, page, limit int) ([]*model.Entry, int64, error)
	UpdateEntry(ctx context.Context, entry *model.Entry) error
	DeleteEntry(ctx context.Context, userID, id string) error
}

// EntryEventPublisher notifies the summary pipeline that a user's entries
// changed. Publishing is best-effort: summaries lag rather than block writes.
type EntryEventPublisher interface {
	PublishEntryEvent(ctx context.Context, userID string)
}

// EntryService handles journal entry business logic.
type EntryService struct {
	store   EntryStore
	events  EntryEventPublisher
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewEntryService creates a new EntryService. events may be nil when the
// summary pipeline is disabled.
func NewEntryService(store EntryStore, events EntryEventPublisher, logger *slog.Logger, recorder metrics.Recorder) *EntryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EntryService{
		store:   store,
		events:  events,
		logger:  logger,
		metrics: recorder,
	}
}

// CreateEntryInput defines input for creating an entry.
type CreateEntryInput struct {
	UserID     string
	Title      string
	Content    string
	Mood       string
	MoodScore  float64
	MoodImage  string
	Tags       []string
	IsFavorite bool
	IsPrivate  bool
}

// CreateEntry validates and persists a new entry owned by the acting user.
// Word count and reading time are derived from the content; the owner's
// entry counter is updated in the same transaction as the insert.
func (s *EntryService) CreateEntry(ctx context.Context, input CreateEntryInput) (*model.Entry, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}
	if math.IsNaN(input.MoodScore) || math.IsInf(input.MoodScore, 0) {
		return nil, ErrInvalidMoodScore
	}

	now := time.Now().UTC()
	entry := &model.Entry{
		ID:         id.New("ent"),
		UserID:     input.UserID,
		Title:      input.Title,
		Mood:       input.Mood,
		MoodScore:  input.MoodScore,
		MoodImage:  input.MoodImage,
		Tags:       normalizeTags(input.Tags),
		IsFavorite: input.IsFavorite,
		IsPrivate:  input.IsPrivate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	entry.SetContent(input.Content)

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.metrics.IncEntryCreated()
	s.notifyEntryChanged(ctx, input.UserID)

	return entry, nil
}

// GetEntry returns an entry only if it is owned by userID.
func (s *EntryService) GetEntry(ctx context.Context, userID, entryID string) (*model.Entry, error) {
	entry, err := s.store.GetEntry(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// ListEntriesInput defines input for listing entries.
type ListEntriesInput struct {
	UserID     string
	Search     string
	Mood       string
	IsFavorite *bool
	Page       int
	Limit      int
}

// EntryPage is a page of entries plus pagination metadata.
type EntryPage struct {
	Entries []*model.Entry
	Page    int
	Limit   int
	Total   int64
	Pages   int64
}

// ListEntries returns the user's entries newest-first with pagination
// metadata. Out-of-range page/limit values fall back to defaults; filter
// values that match nothing yield an empty page, never an error.
func (s *EntryService) ListEntries(ctx context.Context, input ListEntriesInput) (*EntryPage, error) {
	page := input.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	filter := repository.EntryFilter{
		UserID:     input.UserID,
		Search:     input.Search,
		Mood:       input.Mood,
		IsFavorite: input.IsFavorite,
	}

	entries, total, err := s.store.ListEntries(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return &EntryPage{
		Entries: entries,
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
	}, nil
}

// UpdateEntryInput defines a partial patch. Nil pointers leave the stored
// value untouched.
type UpdateEntryInput struct {
	UserID     string
	EntryID    string
	Title      *string
	Content    *string
	Mood       *string
	MoodScore  *float64
	MoodImage  *string
	Tags       []string // nil = unchanged, empty slice = clear
	IsFavorite *bool
	IsPrivate  *bool
}

// UpdateEntry applies a partial patch to an owned entry. Changing content
// recomputes word count and reading time.
func (s *EntryService) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*model.Entry, error) {
	entry, err := s.store.GetEntry(ctx, input.UserID, input.EntryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("load entry for update: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		entry.Title = *input.Title
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, ErrContentRequired
		}
		entry.SetContent(*input.Content)
	}
	if input.Mood != nil {
		entry.Mood = *input.Mood
	}
	if input.MoodScore != nil {
		if math.IsNaN(*input.MoodScore) || math.IsInf(*input.MoodScore, 0) {
			return nil, ErrInvalidMoodScore
		}
		entry.MoodScore = *input.MoodScore
	}
	if input.MoodImage != nil {
		entry.MoodImage = *input.MoodImage
	}
	if input.Tags != nil {
		entry.Tags = normalizeTags(input.Tags)
	}
	if input.IsFavorite != nil {
		entry.IsFavorite = *input.IsFavorite
	}
	if input.IsPrivate != nil {
		entry.IsPrivate = *input.IsPrivate
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateEntry(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.metrics.IncEntryUpdated()
	s.notifyEntryChanged(ctx, input.UserID)

	return entry, nil
}

// DeleteEntry removes an owned entry and decrements the owner's counter.
func (s *EntryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := s.store.DeleteEntry(ctx, userID, entryID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("delete entry: %w", err)
	}

	s.metrics.IncEntryDeleted()
	s.notifyEntryChanged(ctx, userID)

	return nil
}

// notifyEntryChanged publishes an entry event for the summary worker.
func (s *EntryService) notifyEntryChanged(ctx context.Context, userID string) {
	if s.events == nil {
		return
	}
	s.events.PublishEntryEvent(ctx, userID)
}

// normalizeTags trims tags and drops empties and duplicates, preserving
// first-seen order.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		result = append(result, trimmed)
	}
	return result
}
