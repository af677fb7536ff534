// Package gemini adapts the Google Gemini API to the provider interface.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"ideavault/internal/service/llm/core"
)

// Provider streams completions from the Gemini API.
type Provider struct {
	client *genai.Client
}

// NewProvider creates a Gemini provider with the given API key.
func NewProvider(ctx context.Context, apiKey string) (*Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Provider{client: client}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "gemini"
}

// SupportsModel returns true for Gemini model names (e.g. "gemini-2.0-flash").
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "gemini-")
}

// StreamCompletion streams text fragments from the Gemini API.
func (p *Provider) StreamCompletion(ctx context.Context, req *core.GenerateRequest) (<-chan core.StreamEvent, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by gemini provider", req.Model)
	}

	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	eventChan := make(chan core.StreamEvent, 10) // buffered to prevent blocking

	go func() {
		defer close(eventChan)

		for resp, err := range p.client.Models.GenerateContentStream(ctx, req.Model, genai.Text(req.Prompt), config) {
			if err != nil {
				eventChan <- core.StreamEvent{Err: fmt.Errorf("gemini streaming error: %w", err)}
				return
			}

			text := resp.Text()
			if text == "" {
				continue
			}

			select {
			case <-ctx.Done():
				eventChan <- core.StreamEvent{Err: ctx.Err()}
				return
			case eventChan <- core.StreamEvent{Text: text}:
			}
		}
	}()

	return eventChan, nil
}
