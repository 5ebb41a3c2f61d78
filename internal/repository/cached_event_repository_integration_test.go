//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/pkg/redis"
)

// countingEventRepository tracks how many times the backing store is hit
type countingEventRepository struct {
	events    map[string]*domain.Event
	listCalls int
	getCalls  int
}

func newCountingEventRepository() *countingEventRepository {
	return &countingEventRepository{events: make(map[string]*domain.Event)}
}

func (m *countingEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	m.listCalls++
	events := []*domain.Event{}
	for _, e := range m.events {
		events = append(events, e)
	}
	return events, nil
}

func (m *countingEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	m.getCalls++
	event, ok := m.events[slug]
	if !ok {
		return nil, nil
	}
	return event, nil
}

func skipIfNoRedis(t *testing.T) *redis.Client {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test - set INTEGRATION_TEST=true to run")
	}

	host := os.Getenv("TEST_REDIS_HOST")
	if host == "" {
		host = "localhost"
	}

	ctx := context.Background()
	client, err := redis.NewClient(ctx, &redis.Config{
		Host:          host,
		Port:          6379,
		Password:      os.Getenv("TEST_REDIS_PASSWORD"),
		DB:            1, // Use DB 1 for tests
		PoolSize:      10,
		MinIdleConns:  2,
		DialTimeout:   5 * time.Second,
		ReadTimeout:   3 * time.Second,
		WriteTimeout:  3 * time.Second,
		MaxRetries:    1,
		RetryInterval: time.Second,
	})
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		_ = client.Client().FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestCachedEventRepository_GetBySlugUsesCache(t *testing.T) {
	cache := skipIfNoRedis(t)
	backing := newCountingEventRepository()
	backing.events["rock-fest"] = &domain.Event{Slug: "rock-fest", Title: "Rock Fest"}

	repo := NewCachedEventRepository(backing, cache)
	ctx := context.Background()

	// First call hits the backing store
	event, err := repo.GetBySlug(ctx, "rock-fest")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if event == nil || event.Title != "Rock Fest" {
		t.Fatalf("GetBySlug() = %v, want Rock Fest", event)
	}
	if backing.getCalls != 1 {
		t.Errorf("backing store calls = %d, want 1", backing.getCalls)
	}

	// Second call is served from cache
	event, err = repo.GetBySlug(ctx, "rock-fest")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if event == nil || event.Title != "Rock Fest" {
		t.Fatalf("cached GetBySlug() = %v, want Rock Fest", event)
	}
	if backing.getCalls != 1 {
		t.Errorf("backing store calls after cached read = %d, want 1", backing.getCalls)
	}
}

func TestCachedEventRepository_AbsentSlugNotCached(t *testing.T) {
	cache := skipIfNoRedis(t)
	backing := newCountingEventRepository()

	repo := NewCachedEventRepository(backing, cache)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		event, err := repo.GetBySlug(ctx, "no-such-slug")
		if err != nil {
			t.Fatalf("GetBySlug() error = %v", err)
		}
		if event != nil {
			t.Errorf("GetBySlug() = %v, want nil", event)
		}
	}

	// Absent lookups always reach the backing store
	if backing.getCalls != 2 {
		t.Errorf("backing store calls = %d, want 2", backing.getCalls)
	}
}

func TestCachedEventRepository_InvalidateAllDropsEntries(t *testing.T) {
	cache := skipIfNoRedis(t)
	backing := newCountingEventRepository()
	backing.events["rock-fest"] = &domain.Event{Slug: "rock-fest", Title: "Rock Fest"}

	repo := NewCachedEventRepository(backing, cache)
	ctx := context.Background()

	// Populate both the slug and list caches
	if _, err := repo.GetBySlug(ctx, "rock-fest"); err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if err := repo.InvalidateAll(ctx); err != nil {
		t.Fatalf("InvalidateAll() error = %v", err)
	}

	// Reads after invalidation reach the backing store again
	if _, err := repo.GetBySlug(ctx, "rock-fest"); err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if backing.getCalls != 2 {
		t.Errorf("backing store GetBySlug calls = %d, want 2", backing.getCalls)
	}
	if backing.listCalls != 2 {
		t.Errorf("backing store List calls = %d, want 2", backing.listCalls)
	}
}

func TestCachedEventRepository_ListUsesCache(t *testing.T) {
	cache := skipIfNoRedis(t)
	backing := newCountingEventRepository()
	backing.events["rock-fest"] = &domain.Event{Slug: "rock-fest", Title: "Rock Fest"}

	repo := NewCachedEventRepository(backing, cache)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		events, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(events) != 1 {
			t.Errorf("List() returned %d events, want 1", len(events))
		}
	}

	if backing.listCalls != 1 {
		t.Errorf("backing store calls = %d, want 1", backing.listCalls)
	}
}
