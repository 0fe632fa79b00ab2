//go:build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/testutil"
)

func TestIntegrationGetDailyQuotePrefersPinnedDay(t *testing.T) {
	ctx, repo := newTestRepo(t)

	anyDay := testutil.NewTestQuote(t, "Any day will do.")
	if err := repo.CreateQuote(ctx, anyDay); err != nil {
		t.Fatalf("CreateQuote failed: %v", err)
	}

	monday := 1
	pinned := testutil.NewTestQuote(t, "Mondays only.")
	pinned.ID = testutil.UniqueID("qte")
	pinned.DayOfWeek = &monday
	if err := repo.CreateQuote(ctx, pinned); err != nil {
		t.Fatalf("CreateQuote failed: %v", err)
	}

	got, err := repo.GetDailyQuote(ctx, monday)
	if err != nil {
		t.Fatalf("GetDailyQuote failed: %v", err)
	}
	if got.Text != "Mondays only." {
		t.Errorf("monday quote = %q, want the pinned one", got.Text)
	}

	// Other weekdays fall back to the any-day quote.
	got, err = repo.GetDailyQuote(ctx, 3)
	if err != nil {
		t.Fatalf("GetDailyQuote failed: %v", err)
	}
	if got.Text != "Any day will do." {
		t.Errorf("wednesday quote = %q, want the any-day one", got.Text)
	}
}

func TestIntegrationGetDailyQuoteSkipsInactive(t *testing.T) {
	ctx, repo := newTestRepo(t)

	retired := testutil.NewTestQuote(t, "Retired wisdom.")
	retired.IsActive = false
	if err := repo.CreateQuote(ctx, retired); err != nil {
		t.Fatalf("CreateQuote failed: %v", err)
	}

	if _, err := repo.GetDailyQuote(ctx, 0); !errors.Is(err, ErrQuoteNotFound) {
		t.Errorf("all-inactive error = %v, want ErrQuoteNotFound", err)
	}

	current := testutil.NewTestQuote(t, "Current wisdom.")
	current.ID = testutil.UniqueID("qte")
	current.CreatedAt = time.Now().UTC().Add(time.Second)
	if err := repo.CreateQuote(ctx, current); err != nil {
		t.Fatalf("CreateQuote failed: %v", err)
	}

	got, err := repo.GetDailyQuote(ctx, 0)
	if err != nil {
		t.Fatalf("GetDailyQuote failed: %v", err)
	}
	if got.Text != "Current wisdom." {
		t.Errorf("quote = %q, want the active one", got.Text)
	}
}
