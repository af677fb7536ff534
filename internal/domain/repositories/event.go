package repositories

import (
	"context"

	"ideavault/internal/domain/models"
)

// EventRepository persists calendar events, scoped to the owning user.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error

	GetByID(ctx context.Context, id, userID string) (*models.Event, error)

	// ListByUser returns all events of a user ordered by start time ascending.
	ListByUser(ctx context.Context, userID string) ([]*models.Event, error)

	Update(ctx context.Context, event *models.Event) error

	Delete(ctx context.Context, id, userID string) error
}
