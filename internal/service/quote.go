package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/daybook/daybook/internal/cache"
	"github.com/daybook/daybook/internal/id"
	"github.com/daybook/daybook/internal/metrics"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/repository"
)

// QuoteStore is the persistence surface the quote service needs.
type QuoteStore interface {
	CreateQuote(ctx context.Context, quote *model.Quote) error
	GetDailyQuote(ctx context.Context, weekday int) (*model.Quote, error)
}

// QuoteCache caches the resolved daily quote per calendar date.
type QuoteCache interface {
	GetDailyQuote(ctx context.Context, date time.Time) (*model.Quote, error)
	SetDailyQuote(ctx context.Context, date time.Time, quote *model.Quote) error
	InvalidateDailyQuote(ctx context.Context, date time.Time) error
}

// QuoteService resolves the quote of the day.
type QuoteService struct {
	store   QuoteStore
	cache   QuoteCache
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewQuoteService creates a new QuoteService. cache may be nil to skip
// caching entirely.
func NewQuoteService(store QuoteStore, quoteCache QuoteCache, logger *slog.Logger, recorder metrics.Recorder) *QuoteService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &QuoteService{
		store:   store,
		cache:   quoteCache,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// DailyQuote resolves today's quote: cache first, then the newest active
// quote pinned to today's weekday, then the newest any-day quote, and
// finally the hardcoded fallback. The endpoint never fails over quote
// availability; only infrastructure errors propagate as the fallback with
// a warning.
func (s *QuoteService) DailyQuote(ctx context.Context) (*model.Quote, error) {
	today := s.now()

	if s.cache != nil {
		if quote, err := s.cache.GetDailyQuote(ctx, today); err == nil {
			s.metrics.IncQuoteCacheHit()
			return quote, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("quote cache read failed", "error", err)
		}
		s.metrics.IncQuoteCacheMiss()
	}

	quote, err := s.store.GetDailyQuote(ctx, int(today.Weekday()))
	if err != nil {
		if !errors.Is(err, repository.ErrQuoteNotFound) {
			s.logger.Warn("daily quote lookup failed, serving fallback", "error", err)
		}
		s.metrics.IncQuoteFallback()
		return model.FallbackQuote(), nil
	}

	if s.cache != nil {
		if err := s.cache.SetDailyQuote(ctx, today, quote); err != nil {
			s.logger.Warn("quote cache write failed", "error", err)
		}
	}

	return quote, nil
}

// CreateQuoteInput defines input for adding a quote to the rotation.
type CreateQuoteInput struct {
	Text      string
	Author    string
	Type      model.QuoteType
	Category  string
	DayOfWeek *int
	IsActive  bool
}

// CreateQuote validates and stores a new quote, then invalidates today's
// cached quote so the rotation picks it up immediately.
func (s *QuoteService) CreateQuote(ctx context.Context, input CreateQuoteInput) (*model.Quote, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrQuoteTextRequired
	}
	if !input.Type.IsValid() {
		return nil, ErrInvalidQuoteType
	}
	if input.DayOfWeek != nil && (*input.DayOfWeek < 0 || *input.DayOfWeek > 6) {
		return nil, ErrInvalidDayOfWeek
	}

	quote := &model.Quote{
		ID:        id.New("qte"),
		Text:      input.Text,
		Author:    input.Author,
		Type:      input.Type,
		Category:  input.Category,
		DayOfWeek: input.DayOfWeek,
		IsActive:  input.IsActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	if s.cache != nil && quote.IsActive {
		if err := s.cache.InvalidateDailyQuote(ctx, s.now()); err != nil {
			s.logger.Warn("quote cache invalidation failed", "error", err)
		}
	}

	return quote, nil
}
