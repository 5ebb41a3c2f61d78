package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Snapshot placeholders used when the event is missing a field at booking time
const (
	PlaceholderTitle    = "Untitled Event"
	PlaceholderDate     = "Date N/A"
	PlaceholderTime     = "Time N/A"
	PlaceholderCategory = "N/A"
)

// Booking represents a user reservation against a catalog event.
// Event fields are denormalized at creation time so the booking stays
// readable even if the event is later removed from the catalog.
type Booking struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             string             `bson:"userId" json:"userId"`
	EventSlug          string             `bson:"eventSlug" json:"eventSlug"`
	EventTitle         string             `bson:"eventTitle" json:"eventTitle"`
	EventFormattedDate string             `bson:"eventFormattedDate" json:"eventFormattedDate"`
	EventTime          string             `bson:"eventTime" json:"eventTime"`
	EventCategory      string             `bson:"eventCategory" json:"eventCategory"`
	BookedAt           string             `bson:"bookedAt" json:"bookedAt"`
}

// NewBooking builds a booking with a snapshot of the event taken now.
// Missing event fields get placeholder values. bookedAt is used as-is
// when non-empty, otherwise the current UTC time in RFC 3339.
func NewBooking(userID string, event *Event, bookedAt string) *Booking {
	if bookedAt == "" {
		bookedAt = time.Now().UTC().Format(time.RFC3339)
	}

	return &Booking{
		UserID:             userID,
		EventSlug:          event.Slug,
		EventTitle:         coalesce(event.Title, PlaceholderTitle),
		EventFormattedDate: coalesce(event.MetaInfo.FormattedDate, PlaceholderDate),
		EventTime:          coalesce(event.MetaInfo.Time, PlaceholderTime),
		EventCategory:      coalesce(event.MetaInfo.Category, PlaceholderCategory),
		BookedAt:           bookedAt,
	}
}

// Enrich returns a copy of the booking with event fields overlaid from
// the current catalog record. Per field the current value wins when
// non-empty; otherwise the stored snapshot is kept. A nil event leaves
// the snapshot untouched, so bookings survive event removal.
func (b *Booking) Enrich(event *Event) *Booking {
	enriched := *b
	if event == nil {
		return &enriched
	}

	enriched.EventTitle = coalesce(event.Title, b.EventTitle)
	enriched.EventFormattedDate = coalesce(event.MetaInfo.FormattedDate, b.EventFormattedDate)
	enriched.EventTime = coalesce(event.MetaInfo.Time, b.EventTime)
	enriched.EventCategory = coalesce(event.MetaInfo.Category, b.EventCategory)
	return &enriched
}

func coalesce(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
