package service

import (
	"context"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/internal/dto"
	"github.com/Humayraurmi/event-management-server/internal/repository"
	"github.com/Humayraurmi/event-management-server/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// bookingService implements BookingService
type bookingService struct {
	bookingRepo repository.BookingRepository
	eventRepo   repository.EventRepository
	publisher   EventPublisher
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo repository.BookingRepository, eventRepo repository.EventRepository, publisher EventPublisher) BookingService {
	if publisher == nil {
		publisher = NewNoOpEventPublisher()
	}
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		publisher:   publisher,
	}
}

// CreateBooking validates the request, resolves the event, checks for a
// duplicate and persists a snapshot booking
func (s *bookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	// Validation failures never touch the store
	if valid, _ := req.Validate(); !valid {
		return nil, domain.ErrMissingFields
	}

	event, err := s.eventRepo.GetBySlug(ctx, req.EventSlug)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	existing, err := s.bookingRepo.FindByUserAndEvent(ctx, req.UserID, req.EventSlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyBooked
	}

	booking := domain.NewBooking(req.UserID, event, req.BookedAt)

	// The unique index backstops the pre-check above; a concurrent
	// insert between the two steps surfaces here as ErrAlreadyBooked
	stored, err := s.bookingRepo.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishBookingCreated(ctx, stored); err != nil {
		logger.Get().Warn("Failed to publish booking created event",
			zap.String("booking_id", stored.ID.Hex()),
			zap.Error(err))
	}

	return stored, nil
}

// ListBookings lists bookings enriched with current catalog data.
// Per field the current event value wins when non-empty, otherwise the
// snapshot taken at booking time is kept. Bookings whose event no
// longer exists keep their snapshot untouched.
func (s *bookingService) ListBookings(ctx context.Context, filter *dto.BookingListFilter) ([]*domain.Booking, error) {
	repoFilter := &repository.BookingFilter{}
	if filter != nil {
		repoFilter.UserID = filter.UserID
		repoFilter.EventSlug = filter.EventSlug
	}

	bookings, err := s.bookingRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	eventsBySlug := make(map[string]*domain.Event, len(events))
	for _, e := range events {
		eventsBySlug[e.Slug] = e
	}

	enriched := make([]*domain.Booking, len(bookings))
	for i, b := range bookings {
		enriched[i] = b.Enrich(eventsBySlug[b.EventSlug])
	}

	return enriched, nil
}

// DeleteBooking removes a booking by ID. Deleting an unknown but
// well-formed ID is not an error; the count is 0.
func (s *bookingService) DeleteBooking(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidBookingID
	}

	count, err := s.bookingRepo.Delete(ctx, objectID)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		if err := s.publisher.PublishBookingDeleted(ctx, id); err != nil {
			logger.Get().Warn("Failed to publish booking deleted event",
				zap.String("booking_id", id),
				zap.Error(err))
		}
	}

	return count, nil
}
