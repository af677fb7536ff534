package services

import (
	"context"

	"ideavault/internal/domain/models"
)

// RegisterRequest carries a new account signup.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest carries a credential check.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is a successful registration or login: the signed session token
// plus the account it belongs to.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthService defines account registration and login.
type AuthService interface {
	// Register creates an account and signs it in. Returns a ValidationError
	// for bad input and a ConflictError when the email is already taken.
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)

	// Login verifies credentials and issues a session token. Returns
	// ErrUnauthorized for an unknown email or wrong password, without
	// distinguishing the two.
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
}
