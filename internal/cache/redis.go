// Package cache provides the optional Redis backend shared by API replicas.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Request-path commands (rate limit checks, event publishes) must stay short.
const (
	commandTimeout = 250 * time.Millisecond
	dialTimeout    = 2 * time.Second
)

// Cache holds the Redis client used for rate limiting and order events.
type Cache struct {
	client *redis.Client
}

// New parses redisURL, connects and verifies the connection with PING.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if opt.ReadTimeout == 0 {
		opt.ReadTimeout = commandTimeout
	}
	if opt.WriteTimeout == 0 {
		opt.WriteTimeout = commandTimeout
	}
	opt.DialTimeout = dialTimeout
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Client returns the underlying Redis client for components that share the
// connection pool.
func (c *Cache) Client() *redis.Client {
	return c.client
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
