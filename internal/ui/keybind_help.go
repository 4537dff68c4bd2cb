package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model styled for the deck's help line.
func newHelpModel() help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " • "
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAWS)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))
	return helpModel
}

// RenderKeybindHelp renders the described bindings of reg on one line,
// truncated with an ellipsis to width.
func RenderKeybindHelp(reg *KeybindRegistry, width int) string {
	if reg == nil {
		return ""
	}
	bindings := reg.Bindings()
	if len(bindings) == 0 {
		return ""
	}
	helpModel := newHelpModel()
	helpModel.Width = width
	return helpModel.ShortHelpView(bindings)
}
