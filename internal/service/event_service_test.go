package service

import (
	"context"
	"testing"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEvents(t *testing.T) {
	eventRepo := NewMockEventRepository()
	eventRepo.AddEvent(&domain.Event{Slug: "rock-fest", Title: "Rock Fest"})
	eventRepo.AddEvent(&domain.Event{Slug: "jazz-night", Title: "Jazz Night"})

	svc := NewEventService(eventRepo)

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestListEvents_Empty(t *testing.T) {
	svc := NewEventService(NewMockEventRepository())

	events, err := svc.ListEvents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Len(t, events, 0)
}

func TestGetEventBySlug(t *testing.T) {
	eventRepo := NewMockEventRepository()
	eventRepo.AddEvent(&domain.Event{Slug: "rock-fest", Title: "Rock Fest"})

	svc := NewEventService(eventRepo)

	event, err := svc.GetEventBySlug(context.Background(), "rock-fest")
	require.NoError(t, err)
	assert.Equal(t, "Rock Fest", event.Title)
}

func TestGetEventBySlug_NotFound(t *testing.T) {
	svc := NewEventService(NewMockEventRepository())

	_, err := svc.GetEventBySlug(context.Background(), "no-such-slug")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestGetEventBySlug_StoreError(t *testing.T) {
	eventRepo := NewMockEventRepository()
	eventRepo.getErr = assert.AnError

	svc := NewEventService(eventRepo)

	_, err := svc.GetEventBySlug(context.Background(), "rock-fest")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, domain.ErrEventNotFound)
}
