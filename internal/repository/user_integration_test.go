//go:build integration

package repository

import (
	"errors"
	"testing"

	"github.com/daybook/daybook/internal/testutil"
)

func TestIntegrationCreateUserDuplicateEmail(t *testing.T) {
	ctx, repo := newTestRepo(t)

	email := testutil.UniqueID("dup") + "@example.com"
	first := testutil.NewTestUser(t, email)
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	second := testutil.NewTestUser(t, email)
	second.ID = testutil.UniqueID("usr")
	if err := repo.CreateUser(ctx, second); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email error = %v, want ErrEmailExists", err)
	}
}

func TestIntegrationGetUserByEmail(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	retrieved, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if retrieved.ID != user.ID {
		t.Errorf("ID = %q, want %q", retrieved.ID, user.ID)
	}
	if retrieved.PasswordHash != user.PasswordHash {
		t.Errorf("PasswordHash not round-tripped")
	}

	if _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown email error = %v, want ErrUserNotFound", err)
	}
}

func TestIntegrationUpdateUserProfile(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	user.Name = "Renamed Writer"
	user.Avatar = "https://cdn.example.com/a.png"
	if err := repo.UpdateUserProfile(ctx, user); err != nil {
		t.Fatalf("UpdateUserProfile failed: %v", err)
	}

	retrieved, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if retrieved.Name != "Renamed Writer" {
		t.Errorf("Name = %q, want Renamed Writer", retrieved.Name)
	}
	if retrieved.Avatar != user.Avatar {
		t.Errorf("Avatar = %q, want %q", retrieved.Avatar, user.Avatar)
	}

	ghost := testutil.NewTestUser(t, "ghost@example.com")
	ghost.ID = testutil.UniqueID("usr")
	if err := repo.UpdateUserProfile(ctx, ghost); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("update of missing user error = %v, want ErrUserNotFound", err)
	}
}
