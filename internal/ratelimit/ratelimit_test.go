package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLimiter(rdb, "rl", nil), mr
}

func TestAllowWithinLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "caller", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestAllowRejectsOverLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "caller", 2, time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := limiter.Allow(ctx, "caller", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllowIsolatesCallers(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "first", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, "second", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowResets(t *testing.T) {
	limiter, mr := newTestLimiter(t)
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "caller", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, "caller", 1, time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = limiter.Allow(ctx, "caller", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemaining(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	left, err := limiter.Remaining(ctx, "caller", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), left)

	_, err = limiter.Allow(ctx, "caller", 5, time.Minute)
	require.NoError(t, err)

	left, err = limiter.Remaining(ctx, "caller", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), left)
}

func TestNilClientAllows(t *testing.T) {
	limiter := NewLimiter(nil, "rl", nil)

	ok, err := limiter.Allow(context.Background(), "caller", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
