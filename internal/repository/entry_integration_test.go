//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/testutil"
)

// newTestRepo connects to the test database, serializes against other DB
// tests and resets every schema the journaling tables depend on.
func newTestRepo(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	resets := []func(context.Context, *pgxpool.Pool) error{
		testutil.ResetUsersSchema,
		testutil.ResetEntriesSchema,
		testutil.ResetDraftsSchema,
		testutil.ResetQuotesSchema,
		testutil.ResetSummariesSchema,
		testutil.ResetGoalsSchema,
	}
	for _, reset := range resets {
		if err := reset(ctx, repo.Pool()); err != nil {
			t.Fatalf("reset schema: %v", err)
		}
	}

	return ctx, repo
}

func createTestUser(t *testing.T, ctx context.Context, repo *Repository) *model.User {
	t.Helper()
	user := testutil.NewTestUser(t, testutil.UniqueID("writer")+"@example.com")
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestIntegrationCreateEntryIncrementsCounter(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	entry := testutil.NewTestEntry(t, user.ID)
	if err := repo.CreateEntry(ctx, entry); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	retrieved, err := repo.GetEntry(ctx, user.ID, entry.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if retrieved.Title != entry.Title {
		t.Errorf("Title = %q, want %q", retrieved.Title, entry.Title)
	}
	if retrieved.WordCount != entry.WordCount {
		t.Errorf("WordCount = %d, want %d", retrieved.WordCount, entry.WordCount)
	}
	if len(retrieved.Tags) != len(entry.Tags) {
		t.Errorf("Tags = %v, want %v", retrieved.Tags, entry.Tags)
	}

	owner, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if owner.TotalEntries != 1 {
		t.Errorf("TotalEntries = %d, want 1", owner.TotalEntries)
	}
}

func TestIntegrationGetEntryCrossUser(t *testing.T) {
	ctx, repo := newTestRepo(t)
	owner := createTestUser(t, ctx, repo)
	other := createTestUser(t, ctx, repo)

	entry := testutil.NewTestEntry(t, owner.ID)
	if err := repo.CreateEntry(ctx, entry); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	// Another user's id must behave exactly like a missing record.
	if _, err := repo.GetEntry(ctx, other.ID, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("cross-user GetEntry error = %v, want ErrEntryNotFound", err)
	}
}

func TestIntegrationListEntriesPagination(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		entry := testutil.NewTestEntry(t, user.ID)
		entry.ID = fmt.Sprintf("ent-%03d", i)
		entry.Title = fmt.Sprintf("Entry %03d", i)
		entry.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.CreateEntry(ctx, entry); err != nil {
			t.Fatalf("CreateEntry %d failed: %v", i, err)
		}
	}

	page2, total, err := repo.ListEntries(ctx, EntryFilter{UserID: user.ID}, 2, 10)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
	if len(page2) != 10 {
		t.Fatalf("page size = %d, want 10", len(page2))
	}

	// Newest first: page 2 starts at the 11th newest (index 14).
	if page2[0].Title != "Entry 014" {
		t.Errorf("first title on page 2 = %q, want Entry 014", page2[0].Title)
	}
	if page2[9].Title != "Entry 005" {
		t.Errorf("last title on page 2 = %q, want Entry 005", page2[9].Title)
	}
}

func TestIntegrationListEntriesFilters(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	happy := testutil.NewTestEntry(t, user.ID)
	happy.ID = testutil.UniqueID("ent")
	happy.Mood = "happy"
	happy.IsFavorite = true
	happy.Title = "A walk in the park"
	if err := repo.CreateEntry(ctx, happy); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	sad := testutil.NewTestEntry(t, user.ID)
	sad.ID = testutil.UniqueID("ent")
	sad.Mood = "sad"
	sad.Title = "Rainy day"
	if err := repo.CreateEntry(ctx, sad); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	byMood, total, err := repo.ListEntries(ctx, EntryFilter{UserID: user.ID, Mood: "happy"}, 1, 10)
	if err != nil {
		t.Fatalf("ListEntries by mood failed: %v", err)
	}
	if total != 1 || len(byMood) != 1 || byMood[0].ID != happy.ID {
		t.Errorf("mood filter returned %d rows, want the happy entry only", len(byMood))
	}

	bySearch, _, err := repo.ListEntries(ctx, EntryFilter{UserID: user.ID, Search: "PARK"}, 1, 10)
	if err != nil {
		t.Fatalf("ListEntries by search failed: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].ID != happy.ID {
		t.Errorf("search should be case-insensitive over title/content")
	}

	fav := true
	byFav, _, err := repo.ListEntries(ctx, EntryFilter{UserID: user.ID, IsFavorite: &fav}, 1, 10)
	if err != nil {
		t.Fatalf("ListEntries by favorite failed: %v", err)
	}
	if len(byFav) != 1 || byFav[0].ID != happy.ID {
		t.Errorf("favorite filter returned %d rows, want 1", len(byFav))
	}
}

func TestIntegrationUpdateEntry(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	entry := testutil.NewTestEntry(t, user.ID)
	if err := repo.CreateEntry(ctx, entry); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	entry.Title = "Renamed"
	entry.SetContent("Completely new content with rather more words in it.")
	if err := repo.UpdateEntry(ctx, entry); err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	retrieved, err := repo.GetEntry(ctx, user.ID, entry.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if retrieved.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", retrieved.Title)
	}
	if retrieved.WordCount != entry.WordCount {
		t.Errorf("WordCount = %d, want %d", retrieved.WordCount, entry.WordCount)
	}

	missing := testutil.NewTestEntry(t, user.ID)
	missing.ID = testutil.UniqueID("ent")
	if err := repo.UpdateEntry(ctx, missing); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("UpdateEntry of missing row error = %v, want ErrEntryNotFound", err)
	}
}

func TestIntegrationDeleteEntryDecrementsCounter(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	entry := testutil.NewTestEntry(t, user.ID)
	if err := repo.CreateEntry(ctx, entry); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}

	if err := repo.DeleteEntry(ctx, user.ID, entry.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}

	if _, err := repo.GetEntry(ctx, user.ID, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetEntry after delete error = %v, want ErrEntryNotFound", err)
	}

	owner, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if owner.TotalEntries != 0 {
		t.Errorf("TotalEntries = %d, want 0 after delete", owner.TotalEntries)
	}

	if err := repo.DeleteEntry(ctx, user.ID, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("second delete error = %v, want ErrEntryNotFound", err)
	}
}
