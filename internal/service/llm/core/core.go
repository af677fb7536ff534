// Package core holds the provider-facing types of the llm package in a leaf
// package so provider implementations can import them without creating an
// import cycle with the registry.
package core

import "context"

// GenerateRequest describes one generation: a user prompt, the system prompt
// built from the platform catalog, and the provider model to use.
type GenerateRequest struct {
	Prompt string
	System string
	Model  string
}

// StreamEvent is one unit of provider output. Exactly one of Text or Err is
// set; an Err event is terminal. The channel closes after the terminal event
// or after the final fragment of a successful stream.
type StreamEvent struct {
	Text string
	Err  error
}

// Provider generates streaming completions.
type Provider interface {
	// Name returns the provider name used in configuration.
	Name() string

	// SupportsModel reports whether the given model belongs to this provider.
	SupportsModel(model string) bool

	// StreamCompletion starts a generation and returns a channel of events.
	// Returns an error only when the request cannot be constructed; failures
	// after streaming begins surface as a terminal Err event.
	StreamCompletion(ctx context.Context, req *GenerateRequest) (<-chan StreamEvent, error)
}
