package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// EventMetaInfo holds the optional descriptive fields of a catalog event.
// Empty string means the field is absent upstream.
type EventMetaInfo struct {
	FormattedDate string `bson:"formattedDate,omitempty" json:"formattedDate,omitempty"`
	Time          string `bson:"time,omitempty" json:"time,omitempty"`
	Category      string `bson:"category,omitempty" json:"category,omitempty"`
}

// Event represents a catalog event. The catalog is read-only for this
// service; events are written by an upstream system.
type Event struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug     string             `bson:"slug" json:"slug"`
	Title    string             `bson:"title" json:"title"`
	MetaInfo EventMetaInfo      `bson:"metaInfo,omitempty" json:"metaInfo,omitempty"`
}
