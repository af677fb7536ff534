package aicontent

import (
	"regexp"
	"strings"

	"ideavault/internal/domain/models/richtext"
)

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// TextNodes renders prose as paragraph blocks. Blank-line runs split
// paragraphs; single newlines inside a paragraph are kept as literal "\n"
// leaves between the line runs. A segment that trims to nothing still becomes
// an empty paragraph, and empty input yields one empty paragraph, so the
// document stays structurally valid.
func TextNodes(text string) []richtext.Node {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return richtext.EmptyDocument()
	}

	segments := paragraphBreak.Split(trimmed, -1)
	nodes := make([]richtext.Node, 0, len(segments))
	for _, para := range segments {
		para = strings.TrimSpace(para)
		if para == "" {
			nodes = append(nodes, richtext.Paragraph())
			continue
		}

		lines := strings.Split(para, "\n")
		leaves := make([]richtext.Leaf, 0, len(lines)*2-1)
		for i, line := range lines {
			if i > 0 {
				leaves = append(leaves, richtext.Text("\n"))
			}
			leaves = append(leaves, richtext.Text(line))
		}
		nodes = append(nodes, richtext.Paragraph(leaves...))
	}

	return nodes
}
