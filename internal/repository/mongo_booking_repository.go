package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookingsCollection = "bookings"

// MongoBookingRepository implements BookingRepository using MongoDB
type MongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new MongoBookingRepository
func NewMongoBookingRepository(db *mongo.Database) *MongoBookingRepository {
	return &MongoBookingRepository{
		collection: db.Collection(bookingsCollection),
	}
}

// EnsureIndexes creates the unique (userId, eventSlug) index that backs
// the one-booking-per-user-per-event invariant
func (r *MongoBookingRepository) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "eventSlug", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("user_event_unique"),
	}

	if _, err := r.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// List lists bookings matching the filter
func (r *MongoBookingRepository) List(ctx context.Context, filter *BookingFilter) ([]*domain.Booking, error) {
	query := bson.M{}
	if filter != nil {
		if filter.UserID != "" {
			query["userId"] = filter.UserID
		}
		if filter.EventSlug != "" {
			query["eventSlug"] = filter.EventSlug
		}
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*domain.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

// FindByUserAndEvent retrieves a booking by user and event slug
func (r *MongoBookingRepository) FindByUserAndEvent(ctx context.Context, userID, eventSlug string) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.collection.FindOne(ctx, bson.M{
		"userId":    userID,
		"eventSlug": eventSlug,
	}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return &booking, nil
}

// Insert persists a booking and returns the stored record with its ID.
// A duplicate-key violation of the uniqueness index is translated to
// domain.ErrAlreadyBooked so the service treats the storage constraint
// and its own pre-check the same way.
func (r *MongoBookingRepository) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	stored := *booking
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		stored.ID = id
	}

	return &stored, nil
}

// Delete removes a booking by ID and returns the removal count
func (r *MongoBookingRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete booking: %w", err)
	}

	return result.DeletedCount, nil
}
