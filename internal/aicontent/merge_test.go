package aicontent

import (
	"testing"

	contentmodel "ideavault/internal/domain/models/aicontent"
)

func TestMergeResponsesUnion(t *testing.T) {
	old := &contentmodel.Response{
		Platforms: map[string]contentmodel.PlatformContent{
			"instagram": {Title: "Old insta"},
			"twitter":   {Title: "Old twitter"},
		},
		GeneralTips: []string{"old tip"},
	}
	new := &contentmodel.Response{
		Platforms: map[string]contentmodel.PlatformContent{
			"twitter": {Title: "New twitter"},
			"youtube": {Title: "New youtube"},
		},
		GeneralTips: []string{"new tip"},
	}

	merged := MergeResponses(old, new)

	if len(merged.Platforms) != 3 {
		t.Fatalf("got %d platforms, want 3", len(merged.Platforms))
	}
	if merged.Platforms["instagram"].Title != "Old insta" {
		t.Errorf("instagram = %q, want kept old entry", merged.Platforms["instagram"].Title)
	}
	if merged.Platforms["twitter"].Title != "New twitter" {
		t.Errorf("twitter = %q, want new entry to win", merged.Platforms["twitter"].Title)
	}
	if merged.Platforms["youtube"].Title != "New youtube" {
		t.Errorf("youtube = %q, want new entry added", merged.Platforms["youtube"].Title)
	}

	wantTips := []string{"old tip", "new tip"}
	if len(merged.GeneralTips) != len(wantTips) {
		t.Fatalf("got %d tips, want %d", len(merged.GeneralTips), len(wantTips))
	}
	for i, w := range wantTips {
		if merged.GeneralTips[i] != w {
			t.Errorf("tip %d = %q, want %q", i, merged.GeneralTips[i], w)
		}
	}
}

func TestMergeResponsesReplacesEntryWholesale(t *testing.T) {
	old := &contentmodel.Response{
		Platforms: map[string]contentmodel.PlatformContent{
			"instagram": {Title: "Old", Hashtags: []string{"kept?"}},
		},
	}
	new := &contentmodel.Response{
		Platforms: map[string]contentmodel.PlatformContent{
			"instagram": {Title: "New"},
		},
	}

	merged := MergeResponses(old, new)
	if got := merged.Platforms["instagram"]; got.Title != "New" || len(got.Hashtags) != 0 {
		t.Errorf("entry not replaced wholesale: %+v", got)
	}
}

func TestMergeResponsesKeepsDuplicateTips(t *testing.T) {
	old := &contentmodel.Response{GeneralTips: []string{"same tip"}}
	new := &contentmodel.Response{GeneralTips: []string{"same tip"}}

	merged := MergeResponses(old, new)
	if len(merged.GeneralTips) != 2 {
		t.Errorf("got %d tips, want duplicates kept (2)", len(merged.GeneralTips))
	}
}

func TestMergeResponsesNilInputs(t *testing.T) {
	resp := &contentmodel.Response{
		Platforms:   map[string]contentmodel.PlatformContent{"twitter": {Title: "T"}},
		GeneralTips: []string{"tip"},
	}

	if got := MergeResponses(nil, resp); len(got.Platforms) != 1 || len(got.GeneralTips) != 1 {
		t.Errorf("merge with nil old lost data: %+v", got)
	}
	if got := MergeResponses(resp, nil); len(got.Platforms) != 1 || len(got.GeneralTips) != 1 {
		t.Errorf("merge with nil new lost data: %+v", got)
	}
	if got := MergeResponses(nil, nil); got == nil || got.Platforms == nil {
		t.Error("merge of two nils should return an empty response")
	}
}

func TestMergeResponsesDoesNotMutateInputs(t *testing.T) {
	old := &contentmodel.Response{
		Platforms:   map[string]contentmodel.PlatformContent{"instagram": {Title: "Old"}},
		GeneralTips: []string{"old tip"},
	}
	new := &contentmodel.Response{
		Platforms: map[string]contentmodel.PlatformContent{"instagram": {Title: "New"}},
	}

	MergeResponses(old, new)

	if old.Platforms["instagram"].Title != "Old" {
		t.Error("old response was mutated")
	}
	if len(old.GeneralTips) != 1 {
		t.Error("old tips were mutated")
	}
}
