//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func skipIfNoMongo(t *testing.T) *mongodb.Client {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test - set INTEGRATION_TEST=true to run")
	}

	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.NewClient(ctx, &mongodb.Config{
		URI:            uri,
		Database:       "event_db_test",
		ConnectTimeout: 10 * time.Second,
		MaxPoolSize:    10,
		MaxRetries:     1,
		RetryInterval:  time.Second,
	})
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		_ = client.Database().Drop(ctx)
		_ = client.Close(ctx)
	})

	return client
}

func TestMongoBookingRepository_InsertAndFind(t *testing.T) {
	client := skipIfNoMongo(t)
	ctx := context.Background()

	repo := NewMongoBookingRepository(client.Database())
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes() error = %v", err)
	}

	booking := &domain.Booking{
		UserID:     "user-1",
		EventSlug:  "rock-fest",
		EventTitle: "Rock Fest",
		BookedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	stored, err := repo.Insert(ctx, booking)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if stored.ID.IsZero() {
		t.Error("Insert() did not assign an ID")
	}

	found, err := repo.FindByUserAndEvent(ctx, "user-1", "rock-fest")
	if err != nil {
		t.Fatalf("FindByUserAndEvent() error = %v", err)
	}
	if found == nil || found.ID != stored.ID {
		t.Errorf("FindByUserAndEvent() = %v, want stored booking", found)
	}

	absent, err := repo.FindByUserAndEvent(ctx, "user-1", "no-such-event")
	if err != nil {
		t.Fatalf("FindByUserAndEvent() error = %v", err)
	}
	if absent != nil {
		t.Errorf("FindByUserAndEvent() for absent booking = %v, want nil", absent)
	}
}

func TestMongoBookingRepository_DuplicateInsert(t *testing.T) {
	client := skipIfNoMongo(t)
	ctx := context.Background()

	repo := NewMongoBookingRepository(client.Database())
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes() error = %v", err)
	}

	booking := &domain.Booking{
		UserID:    "user-1",
		EventSlug: "rock-fest",
		BookedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := repo.Insert(ctx, booking); err != nil {
		t.Fatalf("first Insert() error = %v", err)
	}

	_, err := repo.Insert(ctx, booking)
	if !errors.Is(err, domain.ErrAlreadyBooked) {
		t.Errorf("second Insert() error = %v, want ErrAlreadyBooked", err)
	}
}

func TestMongoBookingRepository_DeleteIsIdempotent(t *testing.T) {
	client := skipIfNoMongo(t)
	ctx := context.Background()

	repo := NewMongoBookingRepository(client.Database())

	stored, err := repo.Insert(ctx, &domain.Booking{
		UserID:    "user-1",
		EventSlug: "rock-fest",
		BookedAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	count, err := repo.Delete(ctx, stored.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Delete() count = %d, want 1", count)
	}

	count, err = repo.Delete(ctx, stored.ID)
	if err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if count != 0 {
		t.Errorf("second Delete() count = %d, want 0", count)
	}

	count, err = repo.Delete(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Delete() of unknown id error = %v", err)
	}
	if count != 0 {
		t.Errorf("Delete() of unknown id count = %d, want 0", count)
	}
}

func TestMongoBookingRepository_ListWithFilter(t *testing.T) {
	client := skipIfNoMongo(t)
	ctx := context.Background()

	repo := NewMongoBookingRepository(client.Database())

	seed := []*domain.Booking{
		{UserID: "user-1", EventSlug: "rock-fest", BookedAt: time.Now().UTC().Format(time.RFC3339)},
		{UserID: "user-1", EventSlug: "jazz-night", BookedAt: time.Now().UTC().Format(time.RFC3339)},
		{UserID: "user-2", EventSlug: "rock-fest", BookedAt: time.Now().UTC().Format(time.RFC3339)},
	}
	for _, b := range seed {
		if _, err := repo.Insert(ctx, b); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List() returned %d bookings, want 3", len(all))
	}

	byUser, err := repo.List(ctx, &BookingFilter{UserID: "user-1"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("List(userId) returned %d bookings, want 2", len(byUser))
	}

	both, err := repo.List(ctx, &BookingFilter{UserID: "user-2", EventSlug: "rock-fest"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(both) != 1 {
		t.Errorf("List(userId+eventSlug) returned %d bookings, want 1", len(both))
	}
}

func TestMongoEventRepository_GetBySlug(t *testing.T) {
	client := skipIfNoMongo(t)
	ctx := context.Background()

	_, err := client.Collection(eventsCollection).InsertOne(ctx, &domain.Event{
		Slug:  "rock-fest",
		Title: "Rock Fest",
		MetaInfo: domain.EventMetaInfo{
			FormattedDate: "June 1, 2026",
			Time:          "19:00",
			Category:      "Music",
		},
	})
	if err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}

	repo := NewMongoEventRepository(client.Database())

	event, err := repo.GetBySlug(ctx, "rock-fest")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if event == nil || event.Title != "Rock Fest" {
		t.Errorf("GetBySlug() = %v, want Rock Fest", event)
	}

	absent, err := repo.GetBySlug(ctx, "no-such-slug")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if absent != nil {
		t.Errorf("GetBySlug() for absent slug = %v, want nil", absent)
	}
}
