// Package aicontent defines the structured multi-platform content document
// produced by a generation. The JSON shape mirrors what the system prompt asks
// the model to emit: a platforms map keyed by platform name plus general tips.
package aicontent

import "encoding/json"

// Scene is one step of a scene-by-scene breakdown for visual content.
type Scene struct {
	Description string  `json:"description"`
	Text        string  `json:"text"`
	Duration    float64 `json:"duration"`
}

// ContentDetails holds the optional visual-content breakdown of a platform entry.
type ContentDetails struct {
	Scenes      []Scene `json:"scenes,omitempty"`
	Audio       string  `json:"audio,omitempty"`
	Transitions string  `json:"transitions,omitempty"`
}

// PlatformContent is the per-platform structured record. Fields absent in the
// source document stay zero-valued and are never rendered.
type PlatformContent struct {
	Title            string          `json:"title,omitempty"`
	Description      string          `json:"description,omitempty"`
	Hashtags         []string        `json:"hashtags,omitempty"`
	CallToAction     string          `json:"callToAction,omitempty"`
	BestPostingTimes string          `json:"bestPostingTimes,omitempty"`
	ContentFormat    string          `json:"contentFormat,omitempty"`
	AdditionalTips   string          `json:"additionalTips,omitempty"`
	ContentDetails   *ContentDetails `json:"contentDetails,omitempty"`
}

// Response maps platform keys (e.g. "instagram") to their content, plus an
// ordered list of general tips. At most one entry per platform key.
type Response struct {
	Platforms   map[string]PlatformContent `json:"platforms"`
	GeneralTips []string                   `json:"generalTips,omitempty"`
}

// Marshal encodes a response for jsonb storage.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal decodes a jsonb payload into a response.
func Unmarshal(data []byte) (*Response, error) {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// PlatformKeys returns the platform keys present in the response, in no
// particular order.
func (r *Response) PlatformKeys() []string {
	keys := make([]string, 0, len(r.Platforms))
	for k := range r.Platforms {
		keys = append(keys, k)
	}
	return keys
}
