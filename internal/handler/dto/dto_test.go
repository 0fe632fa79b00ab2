package dto

import (
	"strings"
	"testing"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	err := Validate(RegisterRequest{Email: "not-an-email", Password: "pw"})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email address") {
		t.Errorf("message %q should name the email field by its JSON name", msg)
	}
	if !strings.Contains(msg, "password must be at least 8 characters") {
		t.Errorf("message %q should explain the password minimum", msg)
	}
}

func TestValidatePassesValidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  any
	}{
		{"register", RegisterRequest{Email: "jo@example.com", Password: "long enough"}},
		{"entry", CreateEntryRequest{Title: "t", Content: "c"}},
		{"quote", CreateQuoteRequest{Text: "q", Type: "daily"}},
		{"goal", CreateGoalRequest{Title: "t", Category: "health"}},
		{"empty draft", SaveDraftRequest{}},
		{"empty profile patch", UpdateProfileRequest{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.req); err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestValidateQuoteDayOfWeekRange(t *testing.T) {
	bad := 7
	err := Validate(CreateQuoteRequest{Text: "q", Type: "daily", DayOfWeek: &bad})
	if err == nil {
		t.Fatal("expected a validation error for day_of_week=7")
	}
	if !strings.Contains(err.Error(), "day_of_week must be at most 6") {
		t.Errorf("unexpected message: %v", err)
	}
}
