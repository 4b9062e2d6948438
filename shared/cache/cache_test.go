package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayops/infras/otel/mocks"
	"stayops/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProperty struct {
	ID       string  `json:"id"`
	BaseRate float64 `json:"base_rate"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "property:get:p1", cachedProperty{ID: "p1", BaseRate: 120.5}, 60))

	var got cachedProperty
	require.NoError(t, c.Get(ctx, "property:get:p1", &got))
	assert.Equal(t, cachedProperty{ID: "p1", BaseRate: 120.5}, got)

	var raw string
	require.NoError(t, c.Save(ctx, "plain", "value", 60))
	require.NoError(t, c.Get(ctx, "plain", &raw))
	assert.Equal(t, "value", raw)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newCache(t)

	var got cachedProperty
	err := c.Get(context.Background(), "missing", &got)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_TTL(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "short", 1, 5))
	server.FastForward(6 * time.Second)

	var got int
	assert.ErrorIs(t, c.Get(ctx, "short", &got), cache.Nil)
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for _, key := range []string{"booking:gets:a", "booking:gets:b", "booking:get:1"} {
		require.NoError(t, c.Save(ctx, key, 1, 60))
	}

	require.NoError(t, c.Clear(ctx, "booking:gets:*"))
	assert.False(t, server.Exists("booking:gets:a"))
	assert.False(t, server.Exists("booking:gets:b"))
	assert.True(t, server.Exists("booking:get:1"))

	require.NoError(t, c.Delete(ctx, "booking:get:1"))
	assert.False(t, server.Exists("booking:get:1"))
}

func TestRedisCache_Increment(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Increment(ctx, "limiter:10.0.0.1:curl", 30)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 30*time.Second, server.TTL("limiter:10.0.0.1:curl"))

	server.FastForward(31 * time.Second)

	got, err := c.Increment(ctx, "limiter:10.0.0.1:curl", 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
