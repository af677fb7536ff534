// Package anthropic adapts the Anthropic Messages API to the provider interface.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"ideavault/internal/service/llm/core"
)

const defaultMaxTokens = 4096

// Provider streams completions from the Anthropic Messages API.
type Provider struct {
	client anthropic.Client
}

// NewProvider creates an Anthropic provider with the given API key.
func NewProvider(apiKey string) *Provider {
	return &Provider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "anthropic"
}

// SupportsModel returns true for Claude model names.
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "claude-")
}

// StreamCompletion streams text fragments from the Messages API. Only text
// deltas are forwarded; other event kinds carry no content for this use case.
func (p *Provider) StreamCompletion(ctx context.Context, req *core.GenerateRequest) (<-chan core.StreamEvent, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by anthropic provider", req.Model)
	}

	apiParams := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: defaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	if req.System != "" {
		apiParams.System = []anthropic.TextBlockParam{
			{
				Type: "text",
				Text: req.System,
			},
		}
	}

	eventChan := make(chan core.StreamEvent, 10) // buffered to prevent blocking

	go func() {
		defer close(eventChan)

		stream := p.client.Messages.NewStreaming(ctx, apiParams)

		for stream.Next() {
			event := stream.Current()

			deltaEvent, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
			if !ok {
				continue
			}
			if deltaEvent.Delta.Type != "text_delta" || deltaEvent.Delta.Text == "" {
				continue
			}

			select {
			case <-ctx.Done():
				eventChan <- core.StreamEvent{Err: ctx.Err()}
				return
			case eventChan <- core.StreamEvent{Text: deltaEvent.Delta.Text}:
			}
		}

		if err := stream.Err(); err != nil {
			eventChan <- core.StreamEvent{Err: fmt.Errorf("anthropic streaming error: %w", err)}
		}
	}()

	return eventChan, nil
}
