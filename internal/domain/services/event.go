package services

import (
	"context"
	"time"

	"ideavault/internal/domain/models"
)

// EventInput is the payload for creating or fully updating a calendar event.
type EventInput struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	Description *string   `json:"description,omitempty"`
	Color       *string   `json:"color,omitempty"`
}

// EventService defines the business logic for calendar events, scoped to the
// calling user the same way IdeaService is.
type EventService interface {
	Create(ctx context.Context, userID string, req *EventInput) (*models.Event, error)

	// List returns all of a user's events ordered by start time.
	List(ctx context.Context, userID string) ([]*models.Event, error)

	Update(ctx context.Context, userID, eventID string, req *EventInput) (*models.Event, error)

	Delete(ctx context.Context, userID, eventID string) error
}
