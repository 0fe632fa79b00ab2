package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/daybook/daybook/internal/model"
)

const (
	// quoteKeyPrefix is the Redis key prefix for the daily quote cache,
	// keyed by calendar date so stale entries can never bleed into the
	// next day even if TTL accounting drifts.
	quoteKeyPrefix = "quote:daily:"
)

// ErrCacheMiss indicates the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetDailyQuote retrieves the cached quote for a calendar date.
// Returns ErrCacheMiss if not cached.
func (c *Cache) GetDailyQuote(ctx context.Context, date time.Time) (*model.Quote, error) {
	key := quoteKeyPrefix + date.Format("2006-01-02")

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, ErrCacheMiss
	}

	var quote model.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, ErrCacheMiss
	}

	return &quote, nil
}

// SetDailyQuote caches the quote for a calendar date until local midnight.
func (c *Cache) SetDailyQuote(ctx context.Context, date time.Time, quote *model.Quote) error {
	key := quoteKeyPrefix + date.Format("2006-01-02")

	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).AddDate(0, 0, 1)
	ttl := time.Until(midnight)
	if ttl <= 0 {
		ttl = time.Minute
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// InvalidateDailyQuote drops the cached quote for a date. Called when a new
// quote is created so the next read picks it up.
func (c *Cache) InvalidateDailyQuote(ctx context.Context, date time.Time) error {
	key := quoteKeyPrefix + date.Format("2006-01-02")
	return c.client.Del(ctx, key).Err()
}
