package aicontent

import (
	"fmt"
	"strconv"

	contentmodel "ideavault/internal/domain/models/aicontent"
	"ideavault/internal/domain/models/richtext"
)

// PlatformNodes renders one platform's structured content as rich-text
// blocks. Sections appear in a fixed order and a section is emitted only when
// its source field is non-empty, so two identical inputs always yield
// identical node sequences.
func PlatformNodes(pc contentmodel.PlatformContent) []richtext.Node {
	var nodes []richtext.Node

	if pc.Title != "" {
		nodes = append(nodes, richtext.HeadingOne(
			richtext.BoldText("Title: "),
			richtext.Text(pc.Title),
		))
	}

	if pc.Description != "" {
		nodes = append(nodes, richtext.Paragraph(
			richtext.BoldText("Description: "),
			richtext.Text(pc.Description),
		))
	}

	if len(pc.Hashtags) > 0 {
		nodes = append(nodes,
			richtext.HeadingTwo(richtext.BoldText("Hashtags: ")),
			richtext.Paragraph(richtext.Text(hashtagLine(pc.Hashtags))),
		)
	}

	if pc.CallToAction != "" {
		nodes = append(nodes, richtext.HeadingTwo(
			richtext.BoldText("Call to Action"),
			richtext.Text(pc.CallToAction),
		))
	}

	if pc.BestPostingTimes != "" {
		nodes = append(nodes,
			richtext.HeadingTwo(richtext.BoldText("Best Posting Times: ")),
			richtext.Paragraph(richtext.Text(pc.BestPostingTimes)),
		)
	}

	if pc.ContentFormat != "" {
		nodes = append(nodes, richtext.HeadingTwo(
			richtext.BoldText("Content Format: "),
			richtext.Text(pc.ContentFormat),
		))
	}

	if pc.ContentDetails != nil {
		nodes = append(nodes, contentDetailNodes(pc.ContentDetails)...)
	}

	if pc.AdditionalTips != "" {
		nodes = append(nodes,
			richtext.HeadingTwo(richtext.Text("Additional Tips")),
			richtext.Paragraph(richtext.Text(pc.AdditionalTips)),
		)
	}

	return nodes
}

func contentDetailNodes(details *contentmodel.ContentDetails) []richtext.Node {
	nodes := []richtext.Node{
		richtext.HeadingTwo(richtext.Text("Content Details: ")),
	}

	if len(details.Scenes) > 0 {
		nodes = append(nodes, richtext.HeadingTwo(richtext.Text("Scenes")))
		for i, scene := range details.Scenes {
			nodes = append(nodes,
				richtext.Paragraph(
					richtext.BoldText(fmt.Sprintf("Scene %d: ", i+1)),
					richtext.Text(scene.Description),
				),
				richtext.Paragraph(
					richtext.ItalicText("Text overlay: "),
					richtext.Text(scene.Text),
				),
				richtext.Paragraph(
					richtext.Text("Duration: "+formatDuration(scene.Duration)),
				),
			)
		}
	}

	if details.Audio != "" {
		nodes = append(nodes, richtext.Paragraph(
			richtext.BoldText("Audio: "),
			richtext.Text(details.Audio),
		))
	}

	if details.Transitions != "" {
		nodes = append(nodes, richtext.Paragraph(
			richtext.BoldText("Transitions: "),
			richtext.Text(details.Transitions),
		))
	}

	return nodes
}

// hashtagLine renders tags as a single "#a #b #c" run.
func hashtagLine(tags []string) string {
	line := "#"
	for i, tag := range tags {
		if i > 0 {
			line += " #"
		}
		line += tag
	}
	return line
}

// formatDuration prints seconds with no trailing zeros: 3 -> "3s", 2.5 -> "2.5s".
func formatDuration(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}
