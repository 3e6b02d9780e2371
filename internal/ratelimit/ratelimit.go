// Package ratelimit implements a fixed-window request limiter on Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultWindow is the span of one rate limiting window.
const DefaultWindow = time.Minute

// Limiter counts requests per caller in fixed Redis windows.
type Limiter struct {
	rdb    *redis.Client
	prefix string
	logger *zap.Logger
}

// NewLimiter builds a limiter keyed under the given prefix.
func NewLimiter(rdb *redis.Client, prefix string, logger *zap.Logger) *Limiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Limiter{rdb: rdb, prefix: prefix, logger: logger}
}

// Allow records one request for id and reports whether it stays within
// limit for the current window. Redis failures allow the request through.
func (l *Limiter) Allow(ctx context.Context, id string, limit int64, window time.Duration) (bool, error) {
	if l.rdb == nil {
		return true, nil
	}
	if window <= 0 {
		window = DefaultWindow
	}
	key := fmt.Sprintf("%s:%s", l.prefix, id)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("rate limit counter failed", zap.String("key", key), zap.Error(err))
		return true, fmt.Errorf("increment counter: %w", err)
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, key, window).Err(); err != nil {
			l.logger.Warn("rate limit expiry failed", zap.String("key", key), zap.Error(err))
		}
	}
	return count <= limit, nil
}

// Remaining reports how many requests id has left in the current window.
func (l *Limiter) Remaining(ctx context.Context, id string, limit int64) (int64, error) {
	if l.rdb == nil {
		return limit, nil
	}
	key := fmt.Sprintf("%s:%s", l.prefix, id)
	count, err := l.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		return limit, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter: %w", err)
	}
	if count >= limit {
		return 0, nil
	}
	return limit - count, nil
}
