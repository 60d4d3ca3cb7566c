package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
)

// RateLimiter is a fixed-window request limiter backed by Redis, used to
// guard the unauthenticated feedback endpoint.
// Key format: ratelimit:<scope>:<key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
// Non-positive arguments fall back to 10 requests per minute.
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether another request from key (typically a client IP) fits
// in the current window. The window key expires on its own after the window
// passes.
func (l *RateLimiter) Allow(ctx context.Context, scope, key string) (bool, error) {
	k := l.key(scope, key, time.Now())

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *RateLimiter) key(scope, key string, now time.Time) string {
	windowStart := now.Unix() - now.Unix()%int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, key, windowStart)
}
