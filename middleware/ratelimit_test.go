package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit_TestEnvBypass(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	allowed, err := CheckRateLimit(context.Background(), nil, "create_post", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_NilRedisFailOpen(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	allowed, err := CheckRateLimit(context.Background(), nil, "create_post", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_EnforcesLimit(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "create_post", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "create_post", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request should be blocked")

	// A different caller has its own counter.
	allowed, err = CheckRateLimit(ctx, rdb, "create_post", "ip:5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_WindowExpiry(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()

	allowed, err := CheckRateLimit(ctx, rdb, "create_post", "ip:1.2.3.4", 1, time.Second)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = CheckRateLimit(ctx, rdb, "create_post", "ip:1.2.3.4", 1, time.Second)
	require.NoError(t, err)
	assert.False(t, allowed)

	mr.FastForward(2 * time.Second)

	allowed, err = CheckRateLimit(ctx, rdb, "create_post", "ip:1.2.3.4", 1, time.Second)
	require.NoError(t, err)
	assert.True(t, allowed, "counter should reset after the window expires")
}
