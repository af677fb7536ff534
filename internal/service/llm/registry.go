package llm

import (
	"context"
	"fmt"
	"log/slog"

	"ideavault/internal/config"
	"ideavault/internal/service/llm/providers/anthropic"
	"ideavault/internal/service/llm/providers/gemini"
	"ideavault/internal/service/llm/providers/lorem"
	"ideavault/internal/service/llm/providers/openai"
)

// Registry holds the configured providers and resolves models to them.
type Registry struct {
	providers       []Provider
	defaultProvider string
	defaultModel    string
}

// SetupProviders builds the provider registry from configuration. Providers
// without an API key are skipped; the lorem provider is always registered so
// dev and test environments work without credentials.
func SetupProviders(cfg *config.Config, logger *slog.Logger) (*Registry, error) {
	r := &Registry{
		defaultProvider: cfg.DefaultProvider,
		defaultModel:    cfg.DefaultModel,
	}

	if cfg.GeminiAPIKey != "" {
		p, err := gemini.NewProvider(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("setup gemini provider: %w", err)
		}
		r.providers = append(r.providers, p)
		logger.Info("provider registered", "provider", "gemini")
	}

	if cfg.OpenAIAPIKey != "" {
		r.providers = append(r.providers, openai.NewProvider(cfg.OpenAIAPIKey))
		logger.Info("provider registered", "provider", "openai")
	}

	if cfg.AnthropicAPIKey != "" {
		r.providers = append(r.providers, anthropic.NewProvider(cfg.AnthropicAPIKey))
		logger.Info("provider registered", "provider", "anthropic")
	}

	// Always available for development and tests
	r.providers = append(r.providers, lorem.NewProvider())
	logger.Info("provider registered", "provider", "lorem")

	if _, err := r.ByName(cfg.DefaultProvider); err != nil {
		return nil, fmt.Errorf("default provider %q is not configured (missing API key?)", cfg.DefaultProvider)
	}

	return r, nil
}

// ByName returns the provider with the given name.
func (r *Registry) ByName(name string) (Provider, error) {
	for _, p := range r.providers {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown provider: %s", name)
}

// ForModel returns the provider that supports the given model.
func (r *Registry) ForModel(model string) (Provider, error) {
	for _, p := range r.providers {
		if p.SupportsModel(model) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no provider supports model %q", model)
}

// Default returns the configured default provider and model.
func (r *Registry) Default() (Provider, string, error) {
	p, err := r.ByName(r.defaultProvider)
	if err != nil {
		return nil, "", err
	}
	return p, r.defaultModel, nil
}
