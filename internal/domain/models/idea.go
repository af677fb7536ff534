package models

import (
	"encoding/json"
	"time"
)

// Idea statuses tracked by the UI. Stored as free text; these are the values
// the frontend offers.
const (
	IdeaStatusIdeation   = "ideation"
	IdeaStatusDrafting   = "drafting"
	IdeaStatusInProgress = "in-progress"
	IdeaStatusFinished   = "finished"
)

// Idea is one authored idea. Content holds the rich-text document tree and
// PlatformContent the structured AI response; both are opaque jsonb payloads
// at this layer - the richtext and aicontent packages own their shape.
type Idea struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Title           string          `json:"title"`
	Status          string          `json:"status"`
	Tags            []string        `json:"tags"`
	Content         json.RawMessage `json:"content"`
	PlatformContent json.RawMessage `json:"platformContent,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
