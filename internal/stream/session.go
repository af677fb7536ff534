package stream

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"ideavault/internal/aicontent"
	contentmodel "ideavault/internal/domain/models/aicontent"
	"ideavault/internal/domain/models/richtext"
)

// ErrGenerationInFlight is returned when a generation is requested while a
// previous one on the same session has not reached a terminal state.
var ErrGenerationInFlight = errors.New("a generation is already in flight")

// StreamError is a server-signalled mid-stream failure. The session reverts
// the document before surfacing it.
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return "generation failed: " + e.Message
}

// Session drives generations for one idea being edited. It owns the idea's
// working document and structured response, snapshots both at generation
// start, and commits or reverts them when the generation reaches a terminal
// state. At most one generation runs at a time.
type Session struct {
	client *Client
	token  string

	mu       sync.Mutex
	inFlight bool
	content  []richtext.Node
	response *contentmodel.Response
	platform string
}

// NewSession creates a session streaming through client with the given
// bearer credential. The initial document state seeds the first snapshot;
// either may be nil/empty for a fresh idea.
func NewSession(client *Client, token string, content []richtext.Node, response *contentmodel.Response) *Session {
	return &Session{
		client:   client,
		token:    token,
		content:  content,
		response: response,
	}
}

// Content returns the current working document.
func (s *Session) Content() []richtext.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// Response returns the current structured response, or nil.
func (s *Session) Response() *contentmodel.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response
}

// Platform returns the platform key currently rendered, or "" when the
// document shows prose.
func (s *Session) Platform() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform
}

// Generate runs one generation to its terminal state. onUpdate, when
// non-nil, receives the growing aggregate after every fragment. On success
// the classified result is merged into the session; on stream error or
// cancellation the document reverts to its pre-generation state. Returns
// ErrGenerationInFlight when called while another generation is active, a
// *ConnectionError when the stream cannot be opened, a *StreamError for a
// server-signalled failure, or ctx.Err() after cancellation.
func (s *Session) Generate(ctx context.Context, prompt string, onUpdate func(fullText string)) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	s.inFlight = true
	snapContent := s.content
	snapResponse := s.response
	snapPlatform := s.platform
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	increments, err := s.client.Stream(ctx, prompt, s.token)
	if err != nil {
		return err
	}

	var (
		finalText string
		completed bool
		streamErr *StreamError
	)
	agg := NewAggregator(Callbacks{
		OnUpdate: onUpdate,
		OnComplete: func(fullText string) {
			finalText = fullText
			completed = true
		},
		OnError: func(message string) {
			streamErr = &StreamError{Message: message}
		},
	})
	agg.Consume(ctx, increments)

	revert := func() {
		s.mu.Lock()
		s.content = snapContent
		s.response = snapResponse
		s.platform = snapPlatform
		s.mu.Unlock()
	}

	if ctx.Err() != nil {
		revert()
		return ctx.Err()
	}
	if streamErr != nil {
		revert()
		return streamErr
	}
	if !completed {
		// Channel closed without a terminal record; the transport reports
		// this as a stream error increment, so reaching here means the
		// context raced the close.
		revert()
		return &StreamError{Message: "stream ended unexpectedly"}
	}

	s.commit(snapContent, finalText)
	return nil
}

// commit applies a completed generation's full text to the session state.
func (s *Session) commit(snapContent []richtext.Node, finalText string) {
	result := aicontent.Classify(finalText)

	s.mu.Lock()
	defer s.mu.Unlock()

	if result.IsStructured() {
		s.response = aicontent.MergeResponses(s.response, result.Structured)
		if key := firstPlatform(s.response, s.platform); key != "" {
			s.platform = key
			s.content = aicontent.PlatformNodes(s.response.Platforms[key])
		}
		return
	}

	nodes := aicontent.TextNodes(aicontent.StripCodeFence(result.Unstructured))
	s.platform = ""
	if len(snapContent) > 0 {
		s.content = append(append([]richtext.Node(nil), snapContent...), nodes...)
	} else {
		s.content = nodes
	}
}

// SelectPlatform rebuilds the document for one platform of the current
// response. Selection replaces the visible document wholesale.
func (s *Session) SelectPlatform(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.response == nil {
		return fmt.Errorf("no structured content to select from")
	}
	pc, ok := s.response.Platforms[key]
	if !ok {
		return fmt.Errorf("platform %q not present in response", key)
	}
	s.platform = key
	s.content = aicontent.PlatformNodes(pc)
	return nil
}

// firstPlatform keeps the current selection when the merged response still
// has it, otherwise picks the lowest platform key for determinism.
func firstPlatform(resp *contentmodel.Response, current string) string {
	if current != "" {
		if _, ok := resp.Platforms[current]; ok {
			return current
		}
	}
	keys := make([]string, 0, len(resp.Platforms))
	for k := range resp.Platforms {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return current
	}
	sort.Strings(keys)
	return keys[0]
}
