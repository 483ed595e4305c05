package service

import (
	"context"
	"time"
)

// PlaceEvent announces a change to a partner-managed place.
type PlaceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // place.created, place.updated or place.deleted
	PlaceID    string    `json:"place_id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Latitude   float64   `json:"latitude,omitempty"`
	Longitude  float64   `json:"longitude,omitempty"`
	Sports     []string  `json:"sports,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PlaceEventPublisher defines the interface for publishing events to a message queue
type PlaceEventPublisher interface {
	// PublishPlaceEvent publishes a place change event
	PublishPlaceEvent(ctx context.Context, event *PlaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
