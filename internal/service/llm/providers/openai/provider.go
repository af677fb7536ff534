// Package openai adapts the OpenAI chat completions API to the provider interface.
package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"ideavault/internal/service/llm/core"
)

// Provider streams completions from the OpenAI chat completions API.
type Provider struct {
	client openai.Client
}

// NewProvider creates an OpenAI provider with the given API key.
func NewProvider(apiKey string) *Provider {
	return &Provider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "openai"
}

// SupportsModel returns true for OpenAI model names.
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "gpt-") || strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3")
}

// StreamCompletion streams text fragments from the chat completions API.
func (p *Provider) StreamCompletion(ctx context.Context, req *core.GenerateRequest) (<-chan core.StreamEvent, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by openai provider", req.Model)
	}

	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}

	eventChan := make(chan core.StreamEvent, 10) // buffered to prevent blocking

	go func() {
		defer close(eventChan)

		stream := p.client.Chat.Completions.NewStreaming(ctx, params)

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			text := chunk.Choices[0].Delta.Content
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

		if err := stream.Err(); err != nil {
			eventChan <- core.StreamEvent{Err: fmt.Errorf("openai streaming error: %w", err)}
		}
	}()

	return eventChan, nil
}
