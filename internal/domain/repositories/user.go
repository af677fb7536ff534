package repositories

import (
	"context"

	"ideavault/internal/domain/models"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// Create inserts a new user. Returns a ConflictError when the email
	// is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail retrieves a user by email. Returns ErrNotFound when no
	// account exists for it.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
