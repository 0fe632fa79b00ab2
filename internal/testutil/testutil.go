// Package testutil provides helpers shared by integration and unit tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/daybook/daybook/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const advisoryLockID int64 = 240240

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// resetSchema applies a migration's down then up scripts.
func resetSchema(ctx context.Context, pool *pgxpool.Pool, name string) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downPath := filepath.Join(root, "migrations", name+".down.sql")
	upPath := filepath.Join(root, "migrations", name+".up.sql")

	downSQL, err := os.ReadFile(downPath)
	if err != nil {
		return fmt.Errorf("read %s down migration: %w", name, err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply %s down migration: %w", name, err)
	}

	upSQL, err := os.ReadFile(upPath)
	if err != nil {
		return fmt.Errorf("read %s up migration: %w", name, err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply %s up migration: %w", name, err)
	}

	return nil
}

// ResetUsersSchema drops and recreates the users schema for tests.
func ResetUsersSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000001_users")
}

// ResetEntriesSchema drops and recreates the entries schema for tests.
func ResetEntriesSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000002_entries")
}

// ResetDraftsSchema drops and recreates the drafts schema for tests.
func ResetDraftsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000003_drafts")
}

// ResetQuotesSchema drops and recreates the quotes schema for tests.
func ResetQuotesSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000004_quotes")
}

// ResetSummariesSchema drops and recreates the summaries schema for tests.
func ResetSummariesSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000005_summaries")
}

// ResetGoalsSchema drops and recreates the goals and milestones schema for
// tests.
func ResetGoalsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000006_goals")
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	return &model.User{
		ID:           fmt.Sprintf("usr-%d", now.UnixNano()),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$dGVzdHNhbHQ$dGVzdGhhc2g",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestEntry creates a test entry owned by userID with sensible defaults.
func NewTestEntry(t testing.TB, userID string) *model.Entry {
	t.Helper()
	now := time.Now().UTC()
	entry := &model.Entry{
		ID:        fmt.Sprintf("ent-%d", now.UnixNano()),
		UserID:    userID,
		Title:     "Test Entry",
		Mood:      "calm",
		MoodScore: 3,
		Tags:      []string{"test"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	entry.SetContent("A few words of test content.")
	return entry
}

// NewTestQuote creates an active daily quote for any day.
func NewTestQuote(t testing.TB, text string) *model.Quote {
	t.Helper()
	now := time.Now().UTC()
	return &model.Quote{
		ID:        fmt.Sprintf("qte-%d", now.UnixNano()),
		Text:      text,
		Author:    "Test Author",
		Type:      model.QuoteDaily,
		Category:  "test",
		IsActive:  true,
		CreatedAt: now,
	}
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
