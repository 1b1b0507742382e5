package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

const projectListKey = "calendar:projects" // cached JSON document of the full project list

// ListCache is a Redis read-through cache of the project list. It is an
// optimization only: callers fall back to the repository on any miss or
// cache failure, and every mutation invalidates the cached document.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a new project-list cache with the given TTL.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

// Get returns the cached project list, or ok=false on a miss.
func (c *ListCache) Get(ctx context.Context) ([]domain.Project, bool, error) {
	data, err := c.client.Get(ctx, projectListKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return projects, true, nil
}

// Set stores the project list under the cache TTL.
func (c *ListCache) Set(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, projectListKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list so the next read re-primes from the store.
func (c *ListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, projectListKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
