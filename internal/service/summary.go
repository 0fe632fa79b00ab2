package service

import (
	"context"
	"fmt"

	"github.com/daybook/daybook/internal/model"
)

// SummaryStore is the persistence surface the summary read path needs.
// Summaries are written only by the background worker; the API reads them.
type SummaryStore interface {
	ListSummaries(ctx context.Context, userID string, period model.SummaryPeriod) ([]*model.Summary, error)
}

// SummaryService serves precomputed periodic summaries.
type SummaryService struct {
	store SummaryStore
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store SummaryStore) *SummaryService {
	return &SummaryService{store: store}
}

// ListSummaries returns the user's summaries newest-first, optionally
// narrowed to one period type. A user with no summaries yet gets an empty
// list, not an error.
func (s *SummaryService) ListSummaries(ctx context.Context, userID string, period model.SummaryPeriod) ([]*model.Summary, error) {
	if period != "" && !period.IsValid() {
		return nil, ErrInvalidPeriod
	}

	summaries, err := s.store.ListSummaries(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}

	if summaries == nil {
		summaries = []*model.Summary{}
	}
	return summaries, nil
}
