package aicontent

import (
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"platforms\":{}}\n```",
			want:  "{\"platforms\":{}}",
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\":1}\n```",
			want:  "{\"a\":1}",
		},
		{
			name:  "uppercase json fence",
			input: "```JSON\n{}\n```",
			want:  "{}",
		},
		{
			name:  "no fence",
			input: "{\"platforms\":{}}",
			want:  "{\"platforms\":{}}",
		},
		{
			name:  "fence markers only at edges",
			input: "prefix ```json inline``` suffix",
			want:  "prefix ```json inline``` suffix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripCodeFence(tt.input)
			if got != tt.want {
				t.Errorf("StripCodeFence() = %q, want %q", got, tt.want)
			}

			// Stripping an already stripped string must be a no-op
			if again := StripCodeFence(got); again != got {
				t.Errorf("StripCodeFence() not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestClassifyStructured(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantPlatforms []string
		wantTips      int
	}{
		{
			name:          "plain json",
			input:         `{"platforms":{"instagram":{"title":"T"}},"generalTips":["tip"]}`,
			wantPlatforms: []string{"instagram"},
			wantTips:      1,
		},
		{
			name:          "fenced json",
			input:         "```json\n{\"platforms\":{\"twitter\":{\"title\":\"T\"}}}\n```",
			wantPlatforms: []string{"twitter"},
		},
		{
			name:          "empty platforms map",
			input:         `{"platforms":{}}`,
			wantPlatforms: nil,
		},
		{
			name:          "surrounding whitespace",
			input:         "\n\n  {\"platforms\":{\"youtube\":{}}}  \n",
			wantPlatforms: []string{"youtube"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.input)
			if !result.IsStructured() {
				t.Fatalf("Classify() classified as unstructured: %q", result.Unstructured)
			}
			if len(result.Structured.Platforms) != len(tt.wantPlatforms) {
				t.Fatalf("got %d platforms, want %d", len(result.Structured.Platforms), len(tt.wantPlatforms))
			}
			for _, key := range tt.wantPlatforms {
				if _, ok := result.Structured.Platforms[key]; !ok {
					t.Errorf("missing platform %q", key)
				}
			}
			if len(result.Structured.GeneralTips) != tt.wantTips {
				t.Errorf("got %d tips, want %d", len(result.Structured.GeneralTips), tt.wantTips)
			}
		})
	}
}

func TestClassifyUnstructured(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "prose",
			input: "Here are a few thoughts on your idea.",
			want:  "Here are a few thoughts on your idea.",
		},
		{
			name:  "valid json without platforms key",
			input: `{"suggestions":["a","b"]}`,
			want:  `{"suggestions":["a","b"]}`,
		},
		{
			name:  "invalid json in fence keeps fence",
			input: "```json\n{not json}\n```",
			want:  "```json\n{not json}\n```",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  hello  \n",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.input)
			if result.IsStructured() {
				t.Fatal("Classify() classified as structured")
			}
			if result.Unstructured != tt.want {
				t.Errorf("Unstructured = %q, want %q", result.Unstructured, tt.want)
			}
		})
	}
}
