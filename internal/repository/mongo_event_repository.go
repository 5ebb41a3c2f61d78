package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const eventsCollection = "events"

// MongoEventRepository implements EventRepository using MongoDB
type MongoEventRepository struct {
	collection *mongo.Collection
}

// NewMongoEventRepository creates a new MongoEventRepository
func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{
		collection: db.Collection(eventsCollection),
	}
}

// List lists all events in natural store order
func (r *MongoEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*domain.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	return events, nil
}

// GetBySlug retrieves an event by slug
func (r *MongoEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var event domain.Event
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event by slug: %w", err)
	}

	return &event, nil
}
