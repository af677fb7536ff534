package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"ideavault/internal/config"
	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
	"ideavault/internal/domain/repositories"
	"ideavault/internal/domain/services"
)

// IdeaServiceImpl implements the IdeaService interface.
type IdeaServiceImpl struct {
	ideas  repositories.IdeaRepository
	logger *slog.Logger
}

// NewIdeaService creates a new idea service.
func NewIdeaService(ideas repositories.IdeaRepository, logger *slog.Logger) services.IdeaService {
	return &IdeaServiceImpl{
		ideas:  ideas,
		logger: logger,
	}
}

func validateIdeaInput(req *services.IdeaInput) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, config.MaxIdeaTitleLength),
		),
		validation.Field(&req.Status,
			validation.Required.Error("status is required"),
		),
		validation.Field(&req.Tags,
			validation.Length(0, config.MaxTagsPerIdea),
			validation.Each(validation.Required, validation.Length(1, config.MaxTagLength)),
		),
		validation.Field(&req.Content, validation.Required.Error("content is required")),
	)
	if err != nil {
		return domain.NewValidationError(fmt.Sprintf("invalid idea data: %v", err))
	}
	return nil
}

// Create stores a new idea for the user.
func (s *IdeaServiceImpl) Create(ctx context.Context, userID string, req *services.IdeaInput) (*models.Idea, error) {
	if err := validateIdeaInput(req); err != nil {
		return nil, err
	}

	idea := &models.Idea{
		ID:              uuid.New().String(),
		UserID:          userID,
		Title:           req.Title,
		Status:          req.Status,
		Tags:            req.Tags,
		Content:         req.Content,
		PlatformContent: req.PlatformContent,
	}
	if idea.Tags == nil {
		idea.Tags = []string{}
	}

	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}

	s.logger.Info("idea created", "idea_id", idea.ID, "user_id", userID)
	return idea, nil
}

// List returns all of the user's ideas, most recently updated first.
func (s *IdeaServiceImpl) List(ctx context.Context, userID string) ([]*models.Idea, error) {
	ideas, err := s.ideas.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	return ideas, nil
}

// Update replaces an idea's fields wholesale.
func (s *IdeaServiceImpl) Update(ctx context.Context, userID, ideaID string, req *services.IdeaInput) (*models.Idea, error) {
	if err := validateIdeaInput(req); err != nil {
		return nil, err
	}

	idea, err := s.ideas.GetByID(ctx, ideaID, userID)
	if err != nil {
		return nil, err
	}

	idea.Title = req.Title
	idea.Status = req.Status
	idea.Tags = req.Tags
	if idea.Tags == nil {
		idea.Tags = []string{}
	}
	idea.Content = req.Content
	idea.PlatformContent = req.PlatformContent

	if err := s.ideas.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("update idea: %w", err)
	}

	s.logger.Info("idea updated", "idea_id", idea.ID, "user_id", userID)
	return idea, nil
}

// Delete removes an idea owned by the user.
func (s *IdeaServiceImpl) Delete(ctx context.Context, userID, ideaID string) error {
	if err := s.ideas.Delete(ctx, ideaID, userID); err != nil {
		return err
	}
	s.logger.Info("idea deleted", "idea_id", ideaID, "user_id", userID)
	return nil
}

// Search returns the user's ideas matching the term by title or tag.
func (s *IdeaServiceImpl) Search(ctx context.Context, userID, term string) ([]*models.Idea, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("search term is required")
	}

	ideas, err := s.ideas.Search(ctx, userID, term)
	if err != nil {
		return nil, fmt.Errorf("search ideas: %w", err)
	}
	return ideas, nil
}
