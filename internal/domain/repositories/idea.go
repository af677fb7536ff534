package repositories

import (
	"context"

	"ideavault/internal/domain/models"
)

// IdeaRepository persists ideas. All operations are scoped to the owning
// user; lookups for another user's idea return ErrNotFound.
type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error

	// GetByID retrieves one idea owned by userID.
	GetByID(ctx context.Context, id, userID string) (*models.Idea, error)

	// ListByUser returns all ideas of a user, most recently updated first.
	ListByUser(ctx context.Context, userID string) ([]*models.Idea, error)

	// Search returns the user's ideas whose title contains term
	// (case-insensitive) or whose tags include it exactly.
	Search(ctx context.Context, userID, term string) ([]*models.Idea, error)

	Update(ctx context.Context, idea *models.Idea) error

	Delete(ctx context.Context, id, userID string) error
}
