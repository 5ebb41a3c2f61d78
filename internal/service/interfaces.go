package service

import (
	"context"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/internal/dto"
)

// EventService defines the interface for event catalog operations
type EventService interface {
	// ListEvents lists all events
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	// GetEventBySlug retrieves an event by slug
	GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error)
}

// BookingService defines the interface for booking operations
type BookingService interface {
	// CreateBooking validates the request and records a new booking
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error)
	// ListBookings lists bookings enriched with current catalog data
	ListBookings(ctx context.Context, filter *dto.BookingListFilter) ([]*domain.Booking, error)
	// DeleteBooking removes a booking by ID and returns the removal count
	DeleteBooking(ctx context.Context, id string) (int64, error)
}
