package ui

import (
	"strings"

	"pipelinedeck/internal/deck"

	"github.com/charmbracelet/lipgloss"
)

// MinRenderWidth is the narrowest width slides are laid out for.
const MinRenderWidth = 30

// RenderSlide renders the body of s for the given width. The output depends
// only on s and width.
func RenderSlide(s deck.Slide, width int) string {
	if width < MinRenderWidth {
		width = MinRenderWidth
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	parts := []string{
		center.Render(Styles.SlideTitle.Render(withIcon(s.Icon, s.Title))),
		center.Render(Styles.Subtitle.Render(s.Subtitle)),
		"",
	}

	switch s.Kind {
	case deck.KindPipeline:
		parts = append(parts, renderPipeline(s.Layers, width), "", renderBenefits(s.Benefits, width))
	case deck.KindServices:
		parts = append(parts, renderServices(s.Services, width))
	case deck.KindSteps:
		parts = append(parts, renderSteps(s.Steps, width))
	}
	return strings.Join(parts, "\n")
}

// renderPipeline stacks the diagram layers with their connectors.
func renderPipeline(layers []deck.Layer, width int) string {
	var out []string
	for _, l := range layers {
		out = append(out, renderLayer(l, width))
		if l.Connector != nil {
			out = append(out, renderConnector(*l.Connector, width))
		}
	}
	return strings.Join(out, "\n")
}
