package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle bounds failed login attempts per username.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) bool
	RecordFailure(ctx context.Context, username string)
	Reset(ctx context.Context, username string)
}

// redisLoginThrottle counts failures in Redis with a sliding lockout window.
// It degrades open: if Redis is unreachable, logins proceed unthrottled.
type redisLoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewRedisLoginThrottle builds a Redis-backed throttle.
func NewRedisLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &redisLoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

func throttleKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

func (t *redisLoginThrottle) Allow(ctx context.Context, username string) bool {
	if t.client == nil {
		return true
	}
	count, err := t.client.Get(ctx, throttleKey(username)).Int()
	if err != nil {
		return true
	}
	return count < t.maxAttempts
}

func (t *redisLoginThrottle) RecordFailure(ctx context.Context, username string) {
	if t.client == nil {
		return
	}
	key := throttleKey(username)
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		t.client.Expire(ctx, key, t.window)
	}
}

func (t *redisLoginThrottle) Reset(ctx context.Context, username string) {
	if t.client == nil {
		return
	}
	t.client.Del(ctx, throttleKey(username))
}

// noopThrottle disables throttling; used when Redis is not configured.
type noopThrottle struct{}

// NewNoopThrottle returns a throttle that always allows.
func NewNoopThrottle() LoginThrottle { return noopThrottle{} }

func (noopThrottle) Allow(context.Context, string) bool    { return true }
func (noopThrottle) RecordFailure(context.Context, string) {}
func (noopThrottle) Reset(context.Context, string)         {}
