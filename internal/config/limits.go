package config

const (
	// MaxIdeaTitleLength is the maximum length for idea titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxIdeaTitleLength = 255

	// MaxEventTitleLength is the maximum length for calendar event titles.
	// Same as idea titles for consistency.
	MaxEventTitleLength = 255

	// MaxTagLength is the maximum length of a single idea tag.
	MaxTagLength = 64

	// MaxTagsPerIdea caps the tag list so the tags array stays scannable.
	MaxTagsPerIdea = 32

	// MinPasswordLength matches the registration form's minimum.
	MinPasswordLength = 8

	// MaxPromptLength caps generation prompts well below provider limits.
	MaxPromptLength = 8192
)
