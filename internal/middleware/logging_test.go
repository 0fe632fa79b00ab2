package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daybook/daybook/internal/auth"
	"github.com/daybook/daybook/internal/model"
)

func TestLoggerCapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestID(Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/entries/ent-missing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry["status_code"] != float64(http.StatusNotFound) {
		t.Errorf("status_code = %v, want 404", entry["status_code"])
	}
	if entry["method"] != http.MethodGet {
		t.Errorf("method = %v, want GET", entry["method"])
	}
	if entry["request_id"] == "" {
		t.Error("request_id missing from log entry")
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN for 4xx", entry["level"])
	}
}

func TestLoggerIncludesActingUser(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
	req = req.WithContext(auth.ContextWithAuth(req.Context(), &model.AuthContext{UserID: "usr-7"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}

	if entry["user_id"] != "usr-7" {
		t.Errorf("user_id = %v, want usr-7", entry["user_id"])
	}
	if entry["bytes"] != float64(len(`{"success":true}`)) {
		t.Errorf("bytes = %v, want response length", entry["bytes"])
	}

	// Unauthenticated requests log without a user id.
	buf.Reset()
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	var anon map[string]any
	if err := json.Unmarshal(buf.Bytes(), &anon); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if _, ok := anon["user_id"]; ok {
		t.Error("user_id must be absent for unauthenticated requests")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-supplied")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != "req-supplied" {
		t.Errorf("request id in context = %q, want supplied value", seen)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "req-supplied" {
		t.Errorf("response header = %q, want echoed request id", got)
	}

	// Without a supplied header, one is generated.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id header")
	}
}
