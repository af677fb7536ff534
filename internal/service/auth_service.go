// Package service implements the business logic behind the HTTP handlers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"ideavault/internal/auth"
	"ideavault/internal/config"
	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
	"ideavault/internal/domain/repositories"
	"ideavault/internal/domain/services"
)

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	users  repositories.UserRepository
	issuer *auth.TokenIssuer
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users repositories.UserRepository, issuer *auth.TokenIssuer, logger *slog.Logger) services.AuthService {
	return &AuthServiceImpl{
		users:  users,
		issuer: issuer,
		logger: logger,
	}
}

// Register creates an account and signs it in.
func (s *AuthServiceImpl) Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResult, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(config.MinPasswordLength, 0)),
		validation.Field(&req.Name, validation.Required),
	); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("incorrect input format: %v", err))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return &services.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthServiceImpl) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResult, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("incorrect inputs: %v", err))
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message for unknown email and wrong password
			return nil, domain.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, domain.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &services.AuthResult{Token: token, User: user}, nil
}
