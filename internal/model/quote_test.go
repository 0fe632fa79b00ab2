package model

import "testing"

func TestQuoteType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quoteType QuoteType
		want      bool
	}{
		{QuoteDaily, true},
		{QuoteWeekly, true},
		{QuoteMonthly, true},
		{QuoteType("yearly"), false},
		{QuoteType(""), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.quoteType), func(t *testing.T) {
			t.Parallel()

			if got := tt.quoteType.IsValid(); got != tt.want {
				t.Errorf("QuoteType(%q).IsValid() = %v, want %v", tt.quoteType, got, tt.want)
			}
		})
	}
}

func TestFallbackQuote(t *testing.T) {
	t.Parallel()

	quote := FallbackQuote()

	if quote.Text != "The journey of a thousand miles begins with one step." {
		t.Errorf("Text = %q", quote.Text)
	}
	if quote.Author != "Lao Tzu" {
		t.Errorf("Author = %q, want Lao Tzu", quote.Author)
	}
	if quote.Category != "motivation" {
		t.Errorf("Category = %q, want motivation", quote.Category)
	}
	if !quote.IsActive {
		t.Error("fallback quote should be active")
	}
}
