package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

func setupCache(t *testing.T, ttl time.Duration) (*ListCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewListCache(client, ttl), mr
}

func TestListCache(t *testing.T) {
	cache, mr := setupCache(t, 5*time.Minute)
	ctx := context.Background()

	projects := []domain.Project{{
		ID:        "p-1",
		Name:      "Launch",
		Platform:  domain.PlatformInstagram,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Contents:  []domain.Content{},
	}}

	t.Run("miss before the first set", func(t *testing.T) {
		_, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, projects))

		got, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 1)
		assert.Equal(t, "Launch", got[0].Name)
		assert.Equal(t, domain.PlatformInstagram, got[0].Platform)
	})

	t.Run("invalidate drops the document", func(t *testing.T) {
		require.NoError(t, cache.Invalidate(ctx))

		_, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("entry expires after the ttl", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, projects))
		mr.FastForward(6 * time.Minute)

		_, ok, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
