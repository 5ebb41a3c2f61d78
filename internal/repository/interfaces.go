package repository

import (
	"context"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventRepository defines the interface for event catalog access.
// Lookups return (nil, nil) when the record does not exist; errors are
// reserved for backend failures.
type EventRepository interface {
	// List lists all events in natural store order
	List(ctx context.Context) ([]*domain.Event, error)
	// GetBySlug retrieves an event by slug
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
}

// BookingFilter contains filter options for listing bookings.
// Unset fields are unconstrained; set fields are combined with AND.
type BookingFilter struct {
	UserID    string
	EventSlug string
}

// BookingRepository defines the interface for booking ledger access
type BookingRepository interface {
	// List lists bookings matching the filter, without enrichment
	List(ctx context.Context, filter *BookingFilter) ([]*domain.Booking, error)
	// FindByUserAndEvent retrieves a booking by user and event slug
	FindByUserAndEvent(ctx context.Context, userID, eventSlug string) (*domain.Booking, error)
	// Insert persists a booking and returns the stored record with its
	// assigned ID. A uniqueness violation yields domain.ErrAlreadyBooked.
	Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// Delete removes a booking by ID and returns the removal count.
	// A missing ID is not an error; the count is 0.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	// EnsureIndexes creates the indexes the ledger relies on
	EnsureIndexes(ctx context.Context) error
}
