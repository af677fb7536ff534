// Package llm abstracts the text-generation providers behind a single
// streaming interface. Each provider adapts its SDK's stream into a channel of
// text fragments; the relay handler turns those into wire events.
package llm

import "ideavault/internal/service/llm/core"

// GenerateRequest describes one generation: a user prompt, the system prompt
// built from the platform catalog, and the provider model to use.
type GenerateRequest = core.GenerateRequest

// StreamEvent is one unit of provider output. Exactly one of Text or Err is
// set; an Err event is terminal. The channel closes after the terminal event
// or after the final fragment of a successful stream.
type StreamEvent = core.StreamEvent

// Provider generates streaming completions.
type Provider = core.Provider
