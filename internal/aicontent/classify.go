// Package aicontent turns aggregated generation output into rich-text nodes.
// A finished response is either a structured multi-platform JSON document or
// free-form prose; classification decides which, and the mappers render each
// form into the idea's document tree.
package aicontent

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	contentmodel "ideavault/internal/domain/models/aicontent"
)

// Result is the outcome of classifying a complete response. Exactly one of
// Structured and Unstructured is set.
type Result struct {
	// Structured holds the decoded platforms document when the response
	// parsed as JSON carrying a "platforms" key.
	Structured *contentmodel.Response

	// Unstructured holds the trimmed original text when the response is
	// prose. Code fences are left intact here; only the parse attempt
	// strips them.
	Unstructured string
}

// IsStructured reports whether classification recognized a platforms document.
func (r Result) IsStructured() bool {
	return r.Structured != nil
}

var (
	openFenceJSON = regexp.MustCompile(`(?i)^` + "```" + `json\s*`)
	openFence     = regexp.MustCompile(`^` + "```" + `\s*`)
	closeFence    = regexp.MustCompile(`\s*` + "```" + `$`)
)

// StripCodeFence removes a leading ```json or ``` marker and a trailing ```
// marker from s. Text without fences comes back unchanged, so the operation
// is idempotent.
func StripCodeFence(s string) string {
	s = openFenceJSON.ReplaceAllString(s, "")
	s = openFence.ReplaceAllString(s, "")
	s = closeFence.ReplaceAllString(s, "")
	return s
}

// Classify inspects a complete response and decides whether it is a
// structured platforms document or prose.
//
// The text is trimmed and de-fenced before the JSON parse. A parse succeeds
// only when the document is valid JSON AND carries a top-level "platforms"
// key; what is under that key is taken as-is, so an empty or partial
// platforms map still classifies as structured. Anything else, including
// valid JSON without the key, falls back to prose carrying the original
// trimmed text.
func Classify(text string) Result {
	trimmed := strings.TrimSpace(text)
	candidate := strings.TrimSpace(StripCodeFence(trimmed))

	if gjson.Valid(candidate) && gjson.Get(candidate, "platforms").Exists() {
		var resp contentmodel.Response
		if err := json.Unmarshal([]byte(candidate), &resp); err == nil {
			if resp.Platforms == nil {
				resp.Platforms = map[string]contentmodel.PlatformContent{}
			}
			return Result{Structured: &resp}
		}
	}

	return Result{Unstructured: trimmed}
}
