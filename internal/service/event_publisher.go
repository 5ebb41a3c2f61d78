package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Humayraurmi/event-management-server/internal/domain"
	"github.com/Humayraurmi/event-management-server/pkg/kafka"
	"github.com/google/uuid"
)

// BookingEventType identifies the kind of booking lifecycle event
type BookingEventType string

const (
	// BookingEventCreated is published after a booking is recorded
	BookingEventCreated BookingEventType = "booking.created"
	// BookingEventDeleted is published after a booking is removed
	BookingEventDeleted BookingEventType = "booking.deleted"
)

// BookingEvent is the envelope published to the event stream
type BookingEvent struct {
	EventID    string           `json:"eventId"`
	Type       BookingEventType `json:"type"`
	OccurredAt string           `json:"occurredAt"`
	Booking    *domain.Booking  `json:"booking,omitempty"`
	BookingID  string           `json:"bookingId,omitempty"`
}

// EventPublisher defines the interface for publishing booking events
type EventPublisher interface {
	// PublishBookingCreated publishes a booking created event
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error

	// PublishBookingDeleted publishes a booking deleted event
	PublishBookingDeleted(ctx context.Context, bookingID string) error

	// Close closes the event publisher
	Close() error
}

// KafkaEventPublisher implements EventPublisher using Kafka
type KafkaEventPublisher struct {
	producer    *kafka.Producer
	topic       string
	serviceName string
}

// EventPublisherConfig contains configuration for the event publisher
type EventPublisherConfig struct {
	Brokers     []string
	Topic       string
	ServiceName string
	ClientID    string
}

// NewKafkaEventPublisher creates a new Kafka event publisher
func NewKafkaEventPublisher(ctx context.Context, cfg *EventPublisherConfig) (*KafkaEventPublisher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("event publisher config is required")
	}

	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	topic := cfg.Topic
	if topic == "" {
		topic = "booking-events"
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "event-management-server"
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "event-management-producer"
	}

	producer, err := kafka.NewProducer(ctx, &kafka.ProducerConfig{
		Brokers:       cfg.Brokers,
		ClientID:      clientID,
		MaxRetries:    3,
		RetryInterval: 2 * time.Second,
		BatchSize:     100,
		LingerMs:      10,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaEventPublisher{
		producer:    producer,
		topic:       topic,
		serviceName: serviceName,
	}, nil
}

// PublishBookingCreated publishes a booking created event
func (p *KafkaEventPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	event := &BookingEvent{
		Type:    BookingEventCreated,
		Booking: booking,
	}
	return p.publishEvent(ctx, event, booking.UserID)
}

// PublishBookingDeleted publishes a booking deleted event
func (p *KafkaEventPublisher) PublishBookingDeleted(ctx context.Context, bookingID string) error {
	event := &BookingEvent{
		Type:      BookingEventDeleted,
		BookingID: bookingID,
	}
	return p.publishEvent(ctx, event, bookingID)
}

// Close closes the event publisher
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		p.producer.Close()
	}
	return nil
}

// publishEvent stamps the envelope and produces it to the topic
func (p *KafkaEventPublisher) publishEvent(ctx context.Context, event *BookingEvent, key string) error {
	event.EventID = uuid.New().String()
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	headers := map[string]string{
		"event_type":   string(event.Type),
		"event_id":     event.EventID,
		"source":       p.serviceName,
		"content_type": "application/json",
	}

	msg := &kafka.Message{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     value,
		Headers:   headers,
		Timestamp: time.Now(),
	}

	if err := p.producer.Produce(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	return nil
}

// NoOpEventPublisher is a no-op implementation of EventPublisher used
// when Kafka is disabled or unreachable
type NoOpEventPublisher struct{}

// NewNoOpEventPublisher creates a new no-op event publisher
func NewNoOpEventPublisher() *NoOpEventPublisher {
	return &NoOpEventPublisher{}
}

// PublishBookingCreated is a no-op
func (p *NoOpEventPublisher) PublishBookingCreated(ctx context.Context, booking *domain.Booking) error {
	return nil
}

// PublishBookingDeleted is a no-op
func (p *NoOpEventPublisher) PublishBookingDeleted(ctx context.Context, bookingID string) error {
	return nil
}

// Close is a no-op
func (p *NoOpEventPublisher) Close() error {
	return nil
}
