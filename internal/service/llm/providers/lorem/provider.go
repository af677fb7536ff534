// Package lorem is a mock provider that streams lorem ipsum text. Used for
// development and tests without requiring real API keys.
package lorem

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	loremgen "github.com/bozaro/golorem"

	"ideavault/internal/service/llm/core"
)

// Provider streams generated filler text word by word.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{generator: loremgen.New()}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-slow", "lorem-structured"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// getStreamDelay returns the delay between fragments based on the model name.
func getStreamDelay(model string) time.Duration {
	if strings.Contains(model, "slow") {
		return 500 * time.Millisecond
	}
	if strings.Contains(model, "fast") {
		return 5 * time.Millisecond
	}
	return 50 * time.Millisecond
}

// StreamCompletion streams filler text. Models containing "structured" emit a
// canned platforms JSON document instead of prose, so the structured pipeline
// can be exercised end to end offline.
func (p *Provider) StreamCompletion(ctx context.Context, req *core.GenerateRequest) (<-chan core.StreamEvent, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by lorem provider", req.Model)
	}

	var full string
	if strings.Contains(req.Model, "structured") {
		full = p.structuredSample(req.Prompt)
	} else {
		full = p.generator.Paragraph(2, 4) + "\n\n" + p.generator.Paragraph(2, 4)
	}

	delay := getStreamDelay(req.Model)
	eventChan := make(chan core.StreamEvent, 10)

	go func() {
		defer close(eventChan)

		// Stream in small fragments to exercise chunk-boundary handling
		const fragmentSize = 24
		for i := 0; i < len(full); i += fragmentSize {
			end := min(i+fragmentSize, len(full))

			select {
			case <-ctx.Done():
				eventChan <- core.StreamEvent{Err: ctx.Err()}
				return
			case eventChan <- core.StreamEvent{Text: full[i:end]}:
			}

			if delay > 0 {
				select {
				case <-ctx.Done():
					eventChan <- core.StreamEvent{Err: ctx.Err()}
					return
				case <-time.After(delay):
				}
			}
		}
	}()

	return eventChan, nil
}

// structuredSample builds a platforms JSON document seeded from the prompt.
func (p *Provider) structuredSample(prompt string) string {
	title := prompt
	if len(title) > 60 {
		title = title[:60]
	}

	doc := map[string]interface{}{
		"platforms": map[string]interface{}{
			"instagram": map[string]interface{}{
				"title":            title,
				"description":      p.generator.Paragraph(1, 2),
				"hashtags":         []string{"ideas", "content", "creator"},
				"callToAction":     p.generator.Sentence(4, 8),
				"bestPostingTimes": "11am-1pm weekdays",
				"contentFormat":    "Reel",
			},
			"twitter": map[string]interface{}{
				"title":            title,
				"description":      p.generator.Sentence(8, 16),
				"hashtags":         []string{"ideas"},
				"callToAction":     p.generator.Sentence(3, 6),
				"bestPostingTimes": "9am-11am weekdays",
				"contentFormat":    "Text",
			},
		},
		"generalTips": []string{
			p.generator.Sentence(6, 10),
			p.generator.Sentence(6, 10),
		},
	}

	out, _ := json.Marshal(doc)
	return string(out)
}
