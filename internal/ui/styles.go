package ui

import (
	"pipelinedeck/internal/deck"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAWS      = "#FF9900" // Accent: buttons, arrows, active dot
	ColorAWSDeep  = "#FF7700" // AWS service boxes
	ColorSquid    = "#232F3E" // SageMaker border, button text
	ColorExternal = "#5294CF"
	ColorS3       = "#3B82F6"
	ColorAthena   = "#10B981"
	ColorDMS      = "#94A3B8"
	ColorMuted    = "241" // Gray - for dimmed text, hints
	ColorText     = "252" // Light gray - for normal text
	ColorDim      = "243" // Darker gray - for very dim text
	ColorBorder   = "238"
)

// Styles contains shared style definitions used by the chrome and slides.
var Styles = struct {
	// Chrome
	Brand          lipgloss.Style
	Product        lipgloss.Style
	Dot            lipgloss.Style
	DotActive      lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Counter        lipgloss.Style
	Card           lipgloss.Style

	// Slide content
	SlideTitle     lipgloss.Style
	Subtitle       lipgloss.Style
	Muted          lipgloss.Style
	Bold           lipgloss.Style
	Arrow          lipgloss.Style
	ConnectorLabel lipgloss.Style
	Benefit        lipgloss.Style
	BenefitIcon    lipgloss.Style
	StepBadge      lipgloss.Style
	StepRail       lipgloss.Style
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Product: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAWS)),
	Dot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	DotActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAWS)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSquid)).
		Background(lipgloss.Color(ColorAWS)).
		Padding(0, 1),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	Counter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),

	SlideTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Bold: lipgloss.NewStyle().
		Bold(true),
	Arrow: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAWS)),
	ConnectorLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Benefit: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorAWS)).
		PaddingLeft(1),
	BenefitIcon: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAWS)),
	StepBadge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSquid)).
		Background(lipgloss.Color(ColorAWS)).
		Padding(0, 1),
	StepRail: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)),
}

// variantColors maps box variants to their border and title color.
var variantColors = map[deck.Variant]string{
	deck.VariantAWS:       ColorAWSDeep,
	deck.VariantExternal:  ColorExternal,
	deck.VariantSageMaker: ColorAWS,
	deck.VariantS3:        ColorS3,
	deck.VariantAthena:    ColorAthena,
	deck.VariantDMS:       ColorDMS,
}

// variantStyle returns the box style for v. Unknown variants get the
// neutral card border.
func variantStyle(v deck.Variant) lipgloss.Style {
	color, ok := variantColors[v]
	if !ok {
		color = ColorBorder
	}
	border := lipgloss.RoundedBorder()
	if v == deck.VariantSageMaker {
		border = lipgloss.ThickBorder()
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(color)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1).
		Align(lipgloss.Center)
}

// variantTitle returns the title style for a box of variant v.
func variantTitle(v deck.Variant) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	if color, ok := variantColors[v]; ok {
		return st.Foreground(lipgloss.Color(color))
	}
	return st.Foreground(lipgloss.Color(ColorText))
}
