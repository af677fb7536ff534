package llm

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ideavault/internal/config"
	"ideavault/internal/domain"
	"ideavault/internal/platform"
)

// ContentGenerator produces platform content drafts as a live text stream.
type ContentGenerator interface {
	// StreamIdeaContent validates the prompt, picks a provider, and starts
	// a generation guided by the platform system prompt. Fragments arrive
	// on the returned channel; the channel closes after the terminal event.
	StreamIdeaContent(ctx context.Context, userID, prompt string) (<-chan StreamEvent, error)
}

// GenerationService drives idea content generations against the configured
// default provider, with the system prompt rendered from the platform
// catalog.
type GenerationService struct {
	registry  *Registry
	platforms *platform.Registry
	logger    *slog.Logger
}

// NewGenerationService creates a generation service.
func NewGenerationService(registry *Registry, platforms *platform.Registry, logger *slog.Logger) *GenerationService {
	return &GenerationService{
		registry:  registry,
		platforms: platforms,
		logger:    logger,
	}
}

// StreamIdeaContent implements ContentGenerator.
func (s *GenerationService) StreamIdeaContent(ctx context.Context, userID, prompt string) (<-chan StreamEvent, error) {
	if err := validation.Validate(prompt,
		validation.Required.Error("prompt is required"),
		validation.Length(1, config.MaxPromptLength),
	); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid prompt: %v", err))
	}

	provider, model, err := s.registry.Default()
	if err != nil {
		return nil, fmt.Errorf("resolve provider: %w", err)
	}

	s.logger.Info("starting generation",
		"user_id", userID,
		"provider", provider.Name(),
		"model", model,
		"prompt_length", len(prompt),
	)

	events, err := provider.StreamCompletion(ctx, &GenerateRequest{
		Prompt: prompt,
		System: s.platforms.SystemPrompt(),
		Model:  model,
	})
	if err != nil {
		return nil, fmt.Errorf("start generation: %w", err)
	}
	return events, nil
}
