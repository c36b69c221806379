package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/mermaidkit/internal/adapters/redis"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, opts ...redis.Option) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestCache_GetSet(t *testing.T) {
	cache, mr := newCache(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, redis.ErrMiss)

	require.NoError(t, cache.Set(ctx, "k", "pie"))
	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "pie", got)
	assert.True(t, mr.Exists("test:k"))

	n, err := cache.Len(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCache_TTL(t *testing.T) {
	cache, mr := newCache(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "pie"))
	assert.Equal(t, time.Minute, mr.TTL("mermaidkit:render:k"))

	mr.FastForward(2 * time.Minute)
	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, redis.ErrMiss)
}

func TestCache_Purge(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "pie"))
	require.NoError(t, cache.Set(ctx, "b", "mindmap"))
	require.NoError(t, cache.Ping(ctx))
	require.NoError(t, cache.Purge(ctx))

	assert.False(t, mr.Exists("mermaidkit:render:a"))
	assert.False(t, mr.Exists("mermaidkit:render:index"))
	n, err := cache.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
