package services

import (
	"context"
	"encoding/json"

	"ideavault/internal/domain/models"
)

// IdeaInput is the payload for creating or fully updating an idea. Content
// and PlatformContent pass through as opaque documents; their shape belongs
// to the richtext and aicontent packages.
type IdeaInput struct {
	Title           string          `json:"title"`
	Status          string          `json:"status"`
	Tags            []string        `json:"tags"`
	Content         json.RawMessage `json:"content"`
	PlatformContent json.RawMessage `json:"platformContent,omitempty"`
}

// IdeaService defines the business logic for idea operations. Every
// operation is scoped to the calling user; touching another user's idea
// reports ErrNotFound rather than ErrForbidden.
type IdeaService interface {
	Create(ctx context.Context, userID string, req *IdeaInput) (*models.Idea, error)

	// List returns all of a user's ideas, most recently updated first.
	List(ctx context.Context, userID string) ([]*models.Idea, error)

	// Update replaces an idea's fields wholesale.
	Update(ctx context.Context, userID, ideaID string, req *IdeaInput) (*models.Idea, error)

	Delete(ctx context.Context, userID, ideaID string) error

	// Search returns the user's ideas whose title contains term or whose
	// tags include it exactly.
	Search(ctx context.Context, userID, term string) ([]*models.Idea, error)
}
