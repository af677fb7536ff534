package aicontent

import (
	"testing"

	contentmodel "ideavault/internal/domain/models/aicontent"
	"ideavault/internal/domain/models/richtext"
)

func TestPlatformNodesTitleAndDescription(t *testing.T) {
	nodes := PlatformNodes(contentmodel.PlatformContent{
		Title:       "Launch teaser",
		Description: "A short behind-the-scenes clip.",
	})

	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}

	title := nodes[0]
	if title.Type != richtext.TypeHeadingOne {
		t.Errorf("title node type = %q, want %q", title.Type, richtext.TypeHeadingOne)
	}
	if len(title.Children) != 2 || !title.Children[0].Bold || title.Children[0].Text != "Title: " {
		t.Errorf("unexpected title leaves: %+v", title.Children)
	}
	if title.Children[1].Text != "Launch teaser" {
		t.Errorf("title text = %q", title.Children[1].Text)
	}

	desc := nodes[1]
	if desc.Type != richtext.TypeParagraph {
		t.Errorf("description node type = %q, want %q", desc.Type, richtext.TypeParagraph)
	}
	if len(desc.Children) != 2 || desc.Children[0].Text != "Description: " || !desc.Children[0].Bold {
		t.Errorf("unexpected description leaves: %+v", desc.Children)
	}
}

func TestPlatformNodesHashtags(t *testing.T) {
	nodes := PlatformNodes(contentmodel.PlatformContent{
		Hashtags: []string{"golang", "backend", "api"},
	})

	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[0].Type != richtext.TypeHeadingTwo || nodes[0].Children[0].Text != "Hashtags: " {
		t.Errorf("unexpected heading: %+v", nodes[0])
	}
	got := nodes[1].Children[0].Text
	if got != "#golang #backend #api" {
		t.Errorf("hashtag line = %q, want %q", got, "#golang #backend #api")
	}
}

func TestPlatformNodesSectionOrder(t *testing.T) {
	nodes := PlatformNodes(contentmodel.PlatformContent{
		Title:            "T",
		Description:      "D",
		Hashtags:         []string{"x"},
		CallToAction:     "Subscribe now",
		BestPostingTimes: "9am",
		ContentFormat:    "Reel",
		AdditionalTips:   "Keep it short.",
		ContentDetails: &contentmodel.ContentDetails{
			Scenes: []contentmodel.Scene{
				{Description: "Opening shot", Text: "Welcome", Duration: 2.5},
			},
			Audio:       "Upbeat track",
			Transitions: "Quick cuts",
		},
	})

	wantFirstLeaf := []string{
		"Title: ",
		"Description: ",
		"Hashtags: ",
		"#x",
		"Call to Action",
		"Best Posting Times: ",
		"9am",
		"Content Format: ",
		"Content Details: ",
		"Scenes",
		"Scene 1: ",
		"Text overlay: ",
		"Duration: 2.5s",
		"Audio: ",
		"Transitions: ",
		"Additional Tips",
		"Keep it short.",
	}

	if len(nodes) != len(wantFirstLeaf) {
		t.Fatalf("got %d nodes, want %d", len(nodes), len(wantFirstLeaf))
	}
	for i, want := range wantFirstLeaf {
		if nodes[i].Children[0].Text != want {
			t.Errorf("node %d first leaf = %q, want %q", i, nodes[i].Children[0].Text, want)
		}
	}

	// Section headings that render unstyled must stay unstyled
	for _, i := range []int{8, 9, 15} {
		if nodes[i].Children[0].Bold {
			t.Errorf("node %d (%q) should not be bold", i, nodes[i].Children[0].Text)
		}
	}
	// Text overlay label is italic, not bold
	if !nodes[11].Children[0].Italic || nodes[11].Children[0].Bold {
		t.Errorf("text overlay leaf styles wrong: %+v", nodes[11].Children[0])
	}
}

func TestPlatformNodesWholeSecondDuration(t *testing.T) {
	nodes := PlatformNodes(contentmodel.PlatformContent{
		ContentDetails: &contentmodel.ContentDetails{
			Scenes: []contentmodel.Scene{{Description: "d", Text: "t", Duration: 3}},
		},
	})

	var found bool
	for _, n := range nodes {
		if n.Children[0].Text == "Duration: 3s" {
			found = true
		}
	}
	if !found {
		t.Error("expected a Duration: 3s paragraph")
	}
}

func TestPlatformNodesEmptyContent(t *testing.T) {
	if nodes := PlatformNodes(contentmodel.PlatformContent{}); len(nodes) != 0 {
		t.Errorf("got %d nodes for empty content, want 0", len(nodes))
	}
}

func TestTextNodesParagraphSplit(t *testing.T) {
	nodes := TextNodes("Hello\n\nWorld")

	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	for i, want := range []string{"Hello", "World"} {
		if nodes[i].Type != richtext.TypeParagraph {
			t.Errorf("node %d type = %q", i, nodes[i].Type)
		}
		if len(nodes[i].Children) != 1 || nodes[i].Children[0].Text != want {
			t.Errorf("node %d leaves = %+v, want single %q", i, nodes[i].Children, want)
		}
	}
}

func TestTextNodesSingleNewline(t *testing.T) {
	nodes := TextNodes("Line1\nLine2")

	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	leaves := nodes[0].Children
	want := []string{"Line1", "\n", "Line2"}
	if len(leaves) != len(want) {
		t.Fatalf("got %d leaves, want %d: %+v", len(leaves), len(want), leaves)
	}
	for i, w := range want {
		if leaves[i].Text != w {
			t.Errorf("leaf %d = %q, want %q", i, leaves[i].Text, w)
		}
	}
}

func TestTextNodesEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n"} {
		nodes := TextNodes(input)
		if len(nodes) != 1 {
			t.Fatalf("TextNodes(%q) = %d nodes, want 1", input, len(nodes))
		}
		if nodes[0].Type != richtext.TypeParagraph || len(nodes[0].Children) != 1 || nodes[0].Children[0].Text != "" {
			t.Errorf("TextNodes(%q) = %+v, want empty paragraph", input, nodes[0])
		}
	}
}

func TestTextNodesExcessBlankLines(t *testing.T) {
	nodes := TextNodes("A\n\n\n\nB")
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
}

func TestTextNodesWhitespaceSegmentKeepsParagraph(t *testing.T) {
	nodes := TextNodes("A\n\n \n\nB")

	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	if nodes[0].Children[0].Text != "A" || nodes[2].Children[0].Text != "B" {
		t.Errorf("outer paragraphs wrong: %+v", nodes)
	}
	if len(nodes[1].Children) != 1 || nodes[1].Children[0].Text != "" {
		t.Errorf("middle segment should render an empty paragraph: %+v", nodes[1])
	}
}
