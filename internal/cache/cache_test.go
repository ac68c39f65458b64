package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedDoc struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		require.NoError(t, SetJSON(ctx, "doc:1", cachedDoc{ID: 1, Name: "alice"}, time.Minute))

		var got cachedDoc
		found, err := GetJSON(ctx, "doc:1", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "alice", got.Name)
	})

	t.Run("Miss", func(t *testing.T) {
		var got cachedDoc
		found, err := GetJSON(ctx, "doc:missing", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestAside(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedDoc) func() error {
		return func() error {
			fetches++
			dest.ID = 7
			dest.Name = "fetched"
			return nil
		}
	}

	var first cachedDoc
	require.NoError(t, Aside(ctx, "doc:7", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache.
	var second cachedDoc
	require.NoError(t, Aside(ctx, "doc:7", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", second.Name)

	// After expiry the fetch runs again.
	mr.FastForward(2 * time.Minute)
	var third cachedDoc
	require.NoError(t, Aside(ctx, "doc:7", &third, time.Minute, fetch(&third)))
	assert.Equal(t, 2, fetches)
}

func TestInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), cachedDoc{ID: 3}, time.Minute))
	InvalidateUser(ctx, 3)

	var got cachedDoc
	found, err := GetJSON(ctx, UserKey(3), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNilClientIsSafe(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedDoc
	found, err := GetJSON(ctx, "doc:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "doc:1", cachedDoc{}, time.Minute))

	// Aside degrades to a plain fetch.
	fetched := false
	require.NoError(t, Aside(ctx, "doc:1", &got, time.Minute, func() error {
		fetched = true
		got.Name = "direct"
		return nil
	}))
	assert.True(t, fetched)
	assert.Equal(t, "direct", got.Name)

	Invalidate(ctx, "doc:1")
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:42", UserKey(42))
	assert.Equal(t, "thought:7", ThoughtKey(7))
}
