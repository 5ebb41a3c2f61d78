package handler

import (
	"errors"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/internal/dto"
	"github.com/Humayraurmi/event-management-server/internal/service"
	"github.com/Humayraurmi/event-management-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// List handles GET /bookings - lists bookings enriched with current event data
func (h *BookingHandler) List(c *gin.Context) {
	var filter dto.BookingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters.")
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), &filter)
	if err != nil {
		response.InternalError(c, "Failed to fetch bookings with details.")
		return
	}

	response.OK(c, bookings)
}

// Create handles POST /bookings - records a new booking
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields: userId, eventSlug.")
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			response.BadRequest(c, "Missing required fields: userId, eventSlug.")
		case errors.Is(err, domain.ErrEventNotFound):
			response.NotFound(c, "Event not found.")
		case errors.Is(err, domain.ErrAlreadyBooked):
			response.BadRequest(c, "Already booked.")
		default:
			response.InternalError(c, "Failed to create booking.")
		}
		return
	}

	response.Created(c, booking)
}

// Delete handles DELETE /bookings/:id - removes a booking by ID
func (h *BookingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	count, err := h.bookingService.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBookingID) {
			response.BadRequest(c, "Invalid booking id.")
			return
		}
		response.InternalError(c, "Failed to delete booking.")
		return
	}

	response.OK(c, dto.DeleteBookingResponse{DeletedCount: count})
}
