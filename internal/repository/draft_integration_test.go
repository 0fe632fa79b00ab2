//go:build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/testutil"
)

func TestIntegrationUpsertDraftReplacesInPlace(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	now := time.Now().UTC()
	score := 4.0
	draft := &model.Draft{
		ID:        testutil.UniqueID("drf"),
		UserID:    user.ID,
		Title:     "Half a thought",
		Content:   "Started writing and wandered off.",
		Mood:      "calm",
		MoodScore: &score,
		Tags:      []string{"morning"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.UpsertDraft(ctx, draft); err != nil {
		t.Fatalf("UpsertDraft failed: %v", err)
	}

	// A second save for the same user replaces the row, new id and all.
	replacement := &model.Draft{
		ID:        testutil.UniqueID("drf"),
		UserID:    user.ID,
		Title:     "A whole thought",
		Content:   "Came back and finished it.",
		Tags:      []string{"morning", "evening"},
		CreatedAt: now.Add(time.Minute),
		UpdatedAt: now.Add(time.Minute),
	}
	if err := repo.UpsertDraft(ctx, replacement); err != nil {
		t.Fatalf("second UpsertDraft failed: %v", err)
	}

	retrieved, err := repo.GetDraft(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if retrieved.Title != "A whole thought" {
		t.Errorf("Title = %q, want the replacement", retrieved.Title)
	}
	if retrieved.MoodScore != nil {
		t.Errorf("MoodScore = %v, want nil after replacement", *retrieved.MoodScore)
	}
	if len(retrieved.Tags) != 2 {
		t.Errorf("Tags = %v, want 2 tags", retrieved.Tags)
	}
}

func TestIntegrationDeleteDraft(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	if err := repo.DeleteDraft(ctx, user.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("delete with no draft error = %v, want ErrDraftNotFound", err)
	}

	now := time.Now().UTC()
	draft := &model.Draft{
		ID:        testutil.UniqueID("drf"),
		UserID:    user.ID,
		Content:   "Discard me.",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.UpsertDraft(ctx, draft); err != nil {
		t.Fatalf("UpsertDraft failed: %v", err)
	}

	if err := repo.DeleteDraft(ctx, user.ID); err != nil {
		t.Fatalf("DeleteDraft failed: %v", err)
	}
	if _, err := repo.GetDraft(ctx, user.ID); !errors.Is(err, ErrDraftNotFound) {
		t.Errorf("GetDraft after delete error = %v, want ErrDraftNotFound", err)
	}
}
