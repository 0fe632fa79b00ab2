// Package cache is the Redis side of the service: the resolved daily quote
// is cached per calendar date, and the rate limiter keeps its token buckets
// here.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the Redis connection pool. Zero values fall back to
// defaults sized for a single API instance.
type Options struct {
	PoolSize     int
	MinIdleConns int
}

// Cache wraps the Redis client behind domain-level methods.
type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, redisURL string, opts Options) (*Cache, error) {
	parsed, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}
	if opts.MinIdleConns <= 0 {
		opts.MinIdleConns = 2
	}
	parsed.PoolSize = opts.PoolSize
	parsed.MinIdleConns = opts.MinIdleConns
	parsed.PoolTimeout = 4 * time.Second
	parsed.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(parsed)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks Redis connectivity. The readiness probe calls this.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client returns the underlying Redis client for the summary stream, which
// needs consumer-group commands this wrapper does not expose.
func (c *Cache) Client() *redis.Client {
	return c.client
}
