package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/gin-gonic/gin"
)

// MockEventService is a mock implementation of service.EventService
type MockEventService struct {
	events  map[string]*domain.Event
	listErr error
	getErr  error
}

func NewMockEventService() *MockEventService {
	return &MockEventService{
		events: make(map[string]*domain.Event),
	}
}

func (m *MockEventService) AddEvent(event *domain.Event) {
	m.events[event.Slug] = event
}

func (m *MockEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	events := []*domain.Event{}
	for _, e := range m.events {
		events = append(events, e)
	}
	return events, nil
}

func (m *MockEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	event, ok := m.events[slug]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func setupEventRouter(h *EventHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/events", h.List)
	router.GET("/events/:slug", h.GetBySlug)

	return router
}

func TestEventHandler_List(t *testing.T) {
	mockSvc := NewMockEventService()
	mockSvc.AddEvent(&domain.Event{Slug: "rock-fest", Title: "Rock Fest"})
	router := setupEventRouter(NewEventHandler(mockSvc))

	req, _ := http.NewRequest(http.MethodGet, "/events", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var events []*domain.Event
	if err := json.Unmarshal(resp.Body.Bytes(), &events); err != nil {
		t.Fatalf("response is not a bare array: %v", err)
	}
	if len(events) != 1 || events[0].Slug != "rock-fest" {
		t.Errorf("unexpected events payload: %v", events)
	}
}

func TestEventHandler_List_StoreError(t *testing.T) {
	mockSvc := NewMockEventService()
	mockSvc.listErr = errDatabase
	router := setupEventRouter(NewEventHandler(mockSvc))

	req, _ := http.NewRequest(http.MethodGet, "/events", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, resp.Code)
	}
	assertErrorMessage(t, resp.Body.Bytes(), "Failed to fetch events.")
}

func TestEventHandler_GetBySlug(t *testing.T) {
	mockSvc := NewMockEventService()
	mockSvc.AddEvent(&domain.Event{Slug: "rock-fest", Title: "Rock Fest"})
	router := setupEventRouter(NewEventHandler(mockSvc))

	tests := []struct {
		name       string
		slug       string
		wantStatus int
	}{
		{
			name:       "existing event",
			slug:       "rock-fest",
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-existent event",
			slug:       "non-existent",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/events/"+tt.slug, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.Code)
			}
		})
	}
}

func TestEventHandler_GetBySlug_StoreError(t *testing.T) {
	mockSvc := NewMockEventService()
	mockSvc.getErr = errDatabase
	router := setupEventRouter(NewEventHandler(mockSvc))

	req, _ := http.NewRequest(http.MethodGet, "/events/rock-fest", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, resp.Code)
	}
	assertErrorMessage(t, resp.Body.Bytes(), "Failed to fetch event.")
}
