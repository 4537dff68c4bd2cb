package ui

import (
	"strings"

	"pipelinedeck/internal/deck"
	"pipelinedeck/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	boxTextWidth = 20 // text columns inside a diagram box
	gap          = 2  // columns between boxes and cards
	minCardWidth = 24
)

var gapCol = strings.Repeat(" ", gap)

// renderBox draws a diagram node: icon, title and subtitle in a bordered box
// colored by variant.
func renderBox(n deck.Node) string {
	st := variantStyle(n.Variant).Width(boxTextWidth + 2)
	content := lipgloss.JoinVertical(lipgloss.Center,
		Icon(n.Icon),
		variantTitle(n.Variant).Render(textutil.Truncate(n.Title, boxTextWidth)),
		Styles.Subtitle.Render(textutil.Truncate(n.Subtitle, boxTextWidth)),
	)
	return st.Render(content)
}

// renderLayer lays the boxes of l side by side, wrapping into further rows
// when width runs out. Each row is centered.
func renderLayer(l deck.Layer, width int) string {
	var rows, row []string
	rowWidth := 0
	flush := func() {
		if len(row) == 0 {
			return
		}
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.JoinHorizontal(lipgloss.Top, row...)))
		row, rowWidth = nil, 0
	}
	for _, n := range l.Nodes {
		box := renderBox(n)
		w := lipgloss.Width(box)
		if len(row) > 0 && rowWidth+gap+w > width {
			flush()
		}
		if len(row) > 0 {
			row = append(row, gapCol)
			rowWidth += gap
		}
		row = append(row, box)
		rowWidth += w
	}
	flush()
	return strings.Join(rows, "\n")
}

// renderConnector draws a centered downward arrow with an optional caption.
func renderConnector(c deck.Connector, width int) string {
	lines := []string{Styles.Arrow.Render(glyphArrow)}
	if c.Label != "" {
		lines = append(lines, Styles.ConnectorLabel.Render(strings.ToUpper(c.Label)))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderBenefit draws a summary card with an accent rule on its left edge.
func renderBenefit(b deck.Benefit, width int) string {
	st := Styles.Benefit.Width(width - 1)
	head := Styles.Bold.Render(b.Title)
	if g := Icon(b.Icon); g != "" {
		head = Styles.BenefitIcon.Render(g) + " " + head
	}
	return st.Render(lipgloss.JoinVertical(lipgloss.Left, head, Styles.Muted.Render(b.Text)))
}

// renderBenefits places the cards in one row when width allows, otherwise
// stacks them.
func renderBenefits(bs []deck.Benefit, width int) string {
	if len(bs) == 0 {
		return ""
	}
	n := len(bs)
	if width >= n*minCardWidth+(n-1)*gap {
		colWidth := (width - (n-1)*gap) / n
		parts := make([]string, 0, 2*n-1)
		for i, b := range bs {
			if i > 0 {
				parts = append(parts, gapCol)
			}
			parts = append(parts, renderBenefit(b, colWidth))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	cards := make([]string, len(bs))
	for i, b := range bs {
		cards[i] = renderBenefit(b, width)
	}
	return strings.Join(cards, "\n\n")
}

// renderService draws a dictionary entry with a left rule in the service's
// own color.
func renderService(s deck.Service, width int) string {
	st := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(serviceColor(s.Color))).
		PaddingLeft(1).
		Width(width - 1)
	head := Styles.Bold.Render(withIcon(s.Icon, s.Title))
	return st.Render(lipgloss.JoinVertical(lipgloss.Left, head, Styles.Muted.Render(s.Description)))
}

func serviceColor(c string) string {
	if c == "" {
		return ColorBorder
	}
	return c
}

// renderServices lays services out two per row when width allows.
func renderServices(ss []deck.Service, width int) string {
	if width < 2*minCardWidth+gap {
		cards := make([]string, len(ss))
		for i, s := range ss {
			cards[i] = renderService(s, width)
		}
		return strings.Join(cards, "\n\n")
	}
	colWidth := (width - gap) / 2
	var rows []string
	for i := 0; i < len(ss); i += 2 {
		left := renderService(ss[i], colWidth)
		if i+1 == len(ss) {
			rows = append(rows, left)
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			left, gapCol, renderService(ss[i+1], colWidth)))
	}
	return strings.Join(rows, "\n\n")
}

// renderStep draws a numbered badge beside the step text. Every step but the
// last carries a rail under its badge joining it to the next.
func renderStep(st deck.Step, width int, last bool) string {
	badge := Styles.StepBadge.Render(st.Number)
	bw := lipgloss.Width(badge)
	body := lipgloss.NewStyle().Width(max(width-bw-1, minCardWidth)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			Styles.Bold.Render(st.Title),
			Styles.Muted.Render(st.Text),
		))
	left := badge
	if !last {
		// Rail runs the height of the body plus the blank separator line.
		rail := strings.TrimSuffix(strings.Repeat(glyphRail+"\n", lipgloss.Height(body)), "\n")
		left = lipgloss.JoinVertical(lipgloss.Center, badge, Styles.StepRail.Render(rail))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", body)
}

// renderSteps draws the vertical timeline.
func renderSteps(steps []deck.Step, width int) string {
	out := make([]string, len(steps))
	for i, st := range steps {
		out[i] = renderStep(st, width, i == len(steps)-1)
	}
	return strings.Join(out, "\n")
}
