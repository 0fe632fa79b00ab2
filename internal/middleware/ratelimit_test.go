package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/cache"
	"github.com/daybook/daybook/internal/model"
)

// fakeLimiter records the keys it was asked about and returns a canned result.
type fakeLimiter struct {
	lastUserID string
	lastIP     string
	result     *cache.RateLimitResult
	err        error
}

func (f *fakeLimiter) CheckUserRateLimit(_ context.Context, userID string, _, _ int) (*cache.RateLimitResult, error) {
	f.lastUserID = userID
	return f.result, f.err
}

func (f *fakeLimiter) CheckIPRateLimit(_ context.Context, ip string, _, _ int) (*cache.RateLimitResult, error) {
	f.lastIP = ip
	return f.result, f.err
}

func allowedResult() *cache.RateLimitResult {
	return &cache.RateLimitResult{Allowed: true, Remaining: 9, ResetAt: time.Now().Add(time.Minute)}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRateLimitIPKeysOffRemoteAddr(t *testing.T) {
	limiter := &fakeLimiter{result: allowedResult()}
	handler := RateLimitIP(RateLimitConfig{
		Logger:          discardLogger(),
		Limiter:         limiter,
		Enabled:         true,
		AuthEndpointRPS: 5,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:52110"
	// Forwarding headers must not pick the bucket; only the resolved
	// RemoteAddr counts.
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	req.Header.Set("X-Real-IP", "10.0.0.3")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if limiter.lastIP != "203.0.113.9:52110" {
		t.Errorf("limiter keyed on %q, want RemoteAddr", limiter.lastIP)
	}
}

func TestRateLimitIPRejectsWhenExhausted(t *testing.T) {
	limiter := &fakeLimiter{result: &cache.RateLimitResult{
		Allowed:    false,
		RetryAfter: 7 * time.Second,
	}}
	handler := RateLimitIP(RateLimitConfig{
		Logger:  discardLogger(),
		Limiter: limiter,
		Enabled: true,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when the limit is exhausted")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "7" {
		t.Errorf("Retry-After = %q, want 7", got)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"success":false`)) {
		t.Errorf("body = %s, want failure envelope", rec.Body.String())
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	limiter := &fakeLimiter{err: errors.New("redis: connection refused")}
	handler := RateLimitIP(RateLimitConfig{
		Logger:  discardLogger(),
		Limiter: limiter,
		Enabled: true,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when the limiter is unavailable", rec.Code)
	}
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	handler := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Enabled: false})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want passthrough when disabled", rec.Code)
	}
}

func TestRateLimitUserKeyedByAuthContext(t *testing.T) {
	limiter := &fakeLimiter{result: allowedResult()}
	handler := RateLimitUser(RateLimitConfig{
		Logger:            discardLogger(),
		Limiter:           limiter,
		Enabled:           true,
		RequestsPerMinute: 60,
		Burst:             10,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
	req = req.WithContext(auth.ContextWithAuth(req.Context(), &model.AuthContext{UserID: "usr-42"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if limiter.lastUserID != "usr-42" {
		t.Errorf("limiter keyed on %q, want the authenticated user", limiter.lastUserID)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "9" {
		t.Errorf("X-RateLimit-Remaining = %q, want 9", got)
	}

	// Without an auth context the user limiter has nothing to key on.
	limiter.lastUserID = ""
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil))
	if limiter.lastUserID != "" {
		t.Error("limiter must not be consulted for unauthenticated requests")
	}
}
