package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"inkwell/internal/adapters/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPageCacheMemory(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := cache.NewPageCacheMemory(20*time.Second, clock.Now)

	_, ok, err := c.Get(ctx, "page:1")
	require.NoError(t, err)
	assert.False(t, ok, "empty cache")

	require.NoError(t, c.Set(ctx, "page:1", []byte("one")))

	clock.Advance(19 * time.Second)
	v, ok, err := c.Get(ctx, "page:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "one", string(v))

	clock.Advance(time.Second)
	_, ok, err = c.Get(ctx, "page:1")
	require.NoError(t, err)
	assert.False(t, ok, "entry expires exactly at ttl")
}

func TestPageCacheMemoryInvalidate(t *testing.T) {
	ctx := context.Background()
	c := cache.NewPageCacheMemory(time.Minute, nil)

	require.NoError(t, c.Set(ctx, "page:1", []byte("one")))
	require.NoError(t, c.Set(ctx, "page:2", []byte("two")))
	require.NoError(t, c.Invalidate(ctx))

	for _, key := range []string{"page:1", "page:2"} {
		_, ok, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestPageCacheMemorySweepsExpired(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(0, 0)}
	c := cache.NewPageCacheMemory(time.Second, clock.Now)

	for i := 0; i < 300; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("page:%d", i), []byte("x")))
	}
	clock.Advance(2 * time.Second)
	require.NoError(t, c.Set(ctx, "page:fresh", []byte("y")))

	assert.Equal(t, 1, c.Len())
}
