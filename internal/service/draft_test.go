package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

type fakeDraftStore struct {
	mu     sync.Mutex
	drafts map[string]*model.Draft // keyed by user id
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: make(map[string]*model.Draft)}
}

func (f *fakeDraftStore) GetDraft(_ context.Context, userID string) (*model.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	draft, ok := f.drafts[userID]
	if !ok {
		return nil, repository.ErrDraftNotFound
	}
	clone := *draft
	return &clone, nil
}

func (f *fakeDraftStore) UpsertDraft(_ context.Context, draft *model.Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *draft
	f.drafts[draft.UserID] = &clone
	return nil
}

func (f *fakeDraftStore) DeleteDraft(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drafts[userID]; !ok {
		return repository.ErrDraftNotFound
	}
	delete(f.drafts, userID)
	return nil
}

func TestSaveDraftReplacesPrevious(t *testing.T) {
	t.Parallel()
	svc := NewDraftService(newFakeDraftStore())
	ctx := context.Background()

	first, err := svc.SaveDraft(ctx, SaveDraftInput{UserID: "usr-1", Title: "first", Content: "draft one"})
	if err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}

	second, err := svc.SaveDraft(ctx, SaveDraftInput{UserID: "usr-1", Title: "second", Content: "draft two"})
	if err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second draft id = %s, want same id %s (replace, not append)", second.ID, first.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("second save must keep the original created_at")
	}

	got, err := svc.GetDraft(ctx, "usr-1")
	if err != nil {
		t.Fatalf("GetDraft() error = %v", err)
	}
	if got.Title != "second" || got.Content != "draft two" {
		t.Errorf("stored draft = %q/%q, want the replacement", got.Title, got.Content)
	}
}

func TestSaveDraftRejectsBadMoodScore(t *testing.T) {
	t.Parallel()
	svc := NewDraftService(newFakeDraftStore())

	bad := math.NaN()
	if _, err := svc.SaveDraft(context.Background(), SaveDraftInput{UserID: "usr-1", MoodScore: &bad}); !errors.Is(err, ErrInvalidMoodScore) {
		t.Errorf("SaveDraft() error = %v, want ErrInvalidMoodScore", err)
	}
}

func TestGetDraftMissing(t *testing.T) {
	t.Parallel()
	svc := NewDraftService(newFakeDraftStore())

	if _, err := svc.GetDraft(context.Background(), "usr-1"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("GetDraft() error = %v, want ErrDraftNotFound", err)
	}
}

func TestDiscardDraft(t *testing.T) {
	t.Parallel()
	svc := NewDraftService(newFakeDraftStore())
	ctx := context.Background()

	if _, err := svc.SaveDraft(ctx, SaveDraftInput{UserID: "usr-1", Content: "temp"}); err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}

	if err := svc.DiscardDraft(ctx, "usr-1"); err != nil {
		t.Fatalf("DiscardDraft() error = %v", err)
	}

	if _, err := svc.GetDraft(ctx, "usr-1"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("GetDraft() after discard error = %v, want ErrDraftNotFound", err)
	}

	if err := svc.DiscardDraft(ctx, "usr-1"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("DiscardDraft() twice error = %v, want ErrDraftNotFound", err)
	}
}

func TestDraftsAreIsolatedPerUser(t *testing.T) {
	t.Parallel()
	svc := NewDraftService(newFakeDraftStore())
	ctx := context.Background()

	if _, err := svc.SaveDraft(ctx, SaveDraftInput{UserID: "usr-1", Content: "mine"}); err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}

	if _, err := svc.GetDraft(ctx, "usr-2"); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("GetDraft() as another user error = %v, want ErrDraftNotFound", err)
	}
}
