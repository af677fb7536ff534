package aicontent

import (
	contentmodel "ideavault/internal/domain/models/aicontent"
)

// MergeResponses folds a newly generated platforms document into an existing
// one. Platform entries are unioned by key with the incoming entry replacing
// the old one wholesale; general tips are concatenated old-then-incoming with
// duplicates kept. Neither input is modified. A nil old response yields a
// copy of the incoming one, and vice versa.
func MergeResponses(old, incoming *contentmodel.Response) *contentmodel.Response {
	if old == nil && incoming == nil {
		return &contentmodel.Response{Platforms: map[string]contentmodel.PlatformContent{}}
	}
	if old == nil {
		return copyResponse(incoming)
	}
	if incoming == nil {
		return copyResponse(old)
	}

	merged := &contentmodel.Response{
		Platforms:   make(map[string]contentmodel.PlatformContent, len(old.Platforms)+len(incoming.Platforms)),
		GeneralTips: make([]string, 0, len(old.GeneralTips)+len(incoming.GeneralTips)),
	}
	for key, content := range old.Platforms {
		merged.Platforms[key] = content
	}
	for key, content := range incoming.Platforms {
		merged.Platforms[key] = content
	}
	merged.GeneralTips = append(merged.GeneralTips, old.GeneralTips...)
	merged.GeneralTips = append(merged.GeneralTips, incoming.GeneralTips...)
	return merged
}

func copyResponse(r *contentmodel.Response) *contentmodel.Response {
	out := &contentmodel.Response{
		Platforms: make(map[string]contentmodel.PlatformContent, len(r.Platforms)),
	}
	for key, content := range r.Platforms {
		out.Platforms[key] = content
	}
	if len(r.GeneralTips) > 0 {
		out.GeneralTips = append([]string(nil), r.GeneralTips...)
	}
	return out
}
