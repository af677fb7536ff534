// Package richtext defines the block-style rich-text document tree stored on
// ideas. The JSON shape matches the editor's node format: a sequence of block
// nodes, each holding inline leaf runs with optional style flags.
package richtext

import "encoding/json"

// Block node types produced by the editor and the content mappers.
const (
	TypeParagraph  = "paragraph"
	TypeHeadingOne = "heading-one"
	TypeHeadingTwo = "heading-two"
	TypeBlockQuote = "block-quote"
	TypeList       = "bulleted-list"
	TypeListItem   = "list-item"
)

// Leaf is an inline text run with optional style flags.
type Leaf struct {
	Text      string `json:"text"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
}

// Node is one block of the document tree. Every node carries at least one
// child leaf, even if its text is empty, so a document is never structurally
// empty.
type Node struct {
	Type     string `json:"type"`
	Children []Leaf `json:"children"`
}

// Paragraph builds a paragraph node from the given leaves. A paragraph with no
// leaves gets a single empty leaf to preserve the non-empty-children invariant.
func Paragraph(leaves ...Leaf) Node {
	return block(TypeParagraph, leaves)
}

// HeadingOne builds a level-1 heading node.
func HeadingOne(leaves ...Leaf) Node {
	return block(TypeHeadingOne, leaves)
}

// HeadingTwo builds a level-2 heading node.
func HeadingTwo(leaves ...Leaf) Node {
	return block(TypeHeadingTwo, leaves)
}

func block(nodeType string, leaves []Leaf) Node {
	if len(leaves) == 0 {
		leaves = []Leaf{{}}
	}
	return Node{Type: nodeType, Children: leaves}
}

// Text builds an unstyled leaf.
func Text(s string) Leaf {
	return Leaf{Text: s}
}

// BoldText builds a bold leaf.
func BoldText(s string) Leaf {
	return Leaf{Text: s, Bold: true}
}

// ItalicText builds an italic leaf.
func ItalicText(s string) Leaf {
	return Leaf{Text: s, Italic: true}
}

// EmptyDocument returns the minimal valid document: one empty paragraph.
func EmptyDocument() []Node {
	return []Node{Paragraph()}
}

// PlainText flattens a node sequence back to text, concatenating leaf runs
// and separating blocks with newlines. Used for search indexing and the CLI.
func PlainText(nodes []Node) string {
	var out []byte
	for i, n := range nodes {
		if i > 0 {
			out = append(out, '\n')
		}
		for _, leaf := range n.Children {
			out = append(out, leaf.Text...)
		}
	}
	return string(out)
}

// Marshal encodes a node sequence as JSON for jsonb storage.
func Marshal(nodes []Node) ([]byte, error) {
	return json.Marshal(nodes)
}

// Unmarshal decodes a jsonb payload into a node sequence.
func Unmarshal(data []byte) ([]Node, error) {
	var nodes []Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}
