package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/pkg/redis"
)

const (
	// Cache key prefixes
	eventSlugKeyPrefix = "event:slug:"
	eventListKey       = "event:list:all"

	// Default TTL for event caches
	eventCacheTTL = 5 * time.Minute
)

// CachedEventRepository wraps EventRepository with Redis caching.
// The catalog is read-mostly reference data, so entries live for a
// short TTL and correctness never depends on the cache. Any cache
// failure silently falls through to the underlying repository.
type CachedEventRepository struct {
	repo  EventRepository
	cache *redis.Client
}

// NewCachedEventRepository creates a new CachedEventRepository
func NewCachedEventRepository(repo EventRepository, cache *redis.Client) *CachedEventRepository {
	return &CachedEventRepository{
		repo:  repo,
		cache: cache,
	}
}

// List lists all events with caching
func (r *CachedEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	cached, err := r.cache.Get(ctx, eventListKey).Result()
	if err == nil && cached != "" {
		var events []*domain.Event
		if err := json.Unmarshal([]byte(cached), &events); err == nil {
			return events, nil
		}
	}

	// Cache miss - get from database
	events, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(events); err == nil {
		r.cache.Set(ctx, eventListKey, string(data), eventCacheTTL)
	}

	return events, nil
}

// GetBySlug retrieves an event by slug with caching
func (r *CachedEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	cacheKey := eventSlugKeyPrefix + slug
	cached, err := r.cache.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var event domain.Event
		if err := json.Unmarshal([]byte(cached), &event); err == nil {
			return &event, nil
		}
	}

	// Cache miss - get from database
	event, err := r.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		// Absent events are not cached; the upstream catalog writer may
		// create them at any time
		return nil, nil
	}

	if data, err := json.Marshal(event); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), eventCacheTTL)
	}

	return event, nil
}

// InvalidateAll drops all event cache entries
func (r *CachedEventRepository) InvalidateAll(ctx context.Context) error {
	r.cache.Del(ctx, eventListKey)

	iter := r.cache.Client().Scan(ctx, 0, eventSlugKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		r.cache.Del(ctx, iter.Val())
	}

	return iter.Err()
}
