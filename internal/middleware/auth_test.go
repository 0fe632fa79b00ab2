package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/testutil"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newAuthedHandler(t *testing.T) (http.Handler, *auth.TokenService, *string) {
	t.Helper()

	tokens, err := auth.NewTokenService(testKeyHex, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}

	var seenUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = auth.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(AuthConfig{
		Logger: testutil.DiscardLogger(),
		Tokens: tokens,
	})(inner)

	return handler, tokens, &seenUserID
}

func TestAuthAcceptsValidToken(t *testing.T) {
	handler, tokens, seenUserID := newAuthedHandler(t)

	token, err := tokens.Issue("usr-123", "writer@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *seenUserID != "usr-123" {
		t.Errorf("user id in context = %q, want usr-123", *seenUserID)
	}
}

func TestAuthRejections(t *testing.T) {
	handler, tokens, _ := newAuthedHandler(t)

	otherTokens, err := auth.NewTokenService(
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	foreignToken, err := otherTokens.Issue("usr-123", "writer@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	validToken, err := tokens.Issue("usr-123", "writer@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong key", "Bearer " + foreignToken},
		{"bearer without space", "Bearer" + validToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", got)
			}
		})
	}
}

func TestAuthExpiredToken(t *testing.T) {
	tokens, err := auth.NewTokenService(testKeyHex, -time.Minute)
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}

	handler := Auth(AuthConfig{
		Logger: testutil.DiscardLogger(),
		Tokens: tokens,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	expired, err := tokens.Issue("usr-123", "writer@example.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for expired token", rec.Code)
	}
}
