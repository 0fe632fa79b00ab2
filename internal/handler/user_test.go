package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
	"github.com/daybook/daybook/internal/service"
	"github.com/daybook/daybook/internal/testutil"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*model.User // keyed by id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) UpdateUserProfile(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

type staticTokenIssuer struct{}

func (staticTokenIssuer) Issue(userID, _ string) (string, error) { return "token-" + userID, nil }
func (staticTokenIssuer) TokenTTL() time.Duration                { return 15 * time.Minute }

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := service.NewUserService(newFakeUserStore(), staticTokenIssuer{}, testutil.DiscardLogger())
	h := NewUserHandler(svc, testutil.DiscardLogger())

	r := chi.NewRouter()
	r.Post("/api/v1/auth/register", h.Register)
	r.Post("/api/v1/auth/login", h.Login)
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	router := newAuthRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Jo Writer",
		"email":    "jo@example.com",
		"password": "correct horse",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	raw := rec.Body.String()

	var registered struct {
		Data struct {
			User      model.User `json:"user"`
			Token     string     `json:"token"`
			ExpiresIn int64      `json:"expires_in"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(raw), &registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if registered.Data.Token == "" {
		t.Error("expected a token in the register response")
	}
	if registered.Data.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", registered.Data.ExpiresIn)
	}
	if strings.Contains(raw, "argon2id") || strings.Contains(raw, "password") {
		t.Error("register response leaks password material")
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "jo@example.com",
		"password": "correct horse",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newAuthRouter(t)

	body := map[string]any{"email": "jo@example.com", "password": "correct horse"}
	if rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	router := newAuthRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"password": "correct horse"}},
		{"bad email", map[string]any{"email": "not-an-email", "password": "correct horse"}},
		{"short password", map[string]any{"email": "jo@example.com", "password": "short"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	router := newAuthRouter(t)

	if rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email": "jo@example.com", "password": "correct horse",
	}); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}

	tests := []struct {
		name string
		body map[string]any
	}{
		{"unknown email", map[string]any{"email": "ghost@example.com", "password": "correct horse"}},
		{"wrong password", map[string]any{"email": "jo@example.com", "password": "wrong horse"}},
		{"missing password", map[string]any{"email": "jo@example.com"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", tt.body)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			env := decodeEnvelope(t, rec)
			if env.Message != "invalid email or password" {
				t.Errorf("message = %q, want the uniform credential error", env.Message)
			}
		})
	}
}
