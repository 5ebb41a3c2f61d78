package handler

import (
	"errors"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/internal/service"
	"github.com/Humayraurmi/event-management-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// List handles GET /events - lists all events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch events.")
		return
	}

	response.OK(c, events)
}

// GetBySlug handles GET /events/:slug - retrieves an event by slug
func (h *EventHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	event, err := h.eventService.GetEventBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalError(c, "Failed to fetch event.")
		return
	}

	response.OK(c, event)
}
