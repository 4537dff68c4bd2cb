package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of lines outside the slide card: header,
// footer and help line.
const chromeHeight = 3

type zoneAction int

const (
	zoneDot zoneAction = iota
	zonePrev
	zoneNext
	zoneFullscreen
)

// hitZone is a clickable single-line region of the last rendered frame.
type hitZone struct {
	x, y, w int
	action  zoneAction
	index   int
}

func (z hitZone) contains(x, y int) bool {
	return y == z.y && x >= z.x && x < z.x+z.w
}

// spread lays out left, mid and right across width with mid centered in the
// remaining space. It returns the line and the x offsets of mid and right.
func spread(width int, left, mid, right string) (string, int, int) {
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)
	free := width - lw - mw - rw
	if free < 2 {
		free = 2
	}
	before := free / 2
	after := free - before
	midX := lw + before
	rightX := midX + mw + after
	line := left + strings.Repeat(" ", before) + mid + strings.Repeat(" ", after) + right
	return line, midX, rightX
}

// renderHeader draws the brand, the progress dots and the fullscreen button.
// Zones are relative to the header line.
func (a *AppModel) renderHeader() (string, []hitZone) {
	d := a.Shell.Deck
	brand := Styles.Brand.Render(withIcon(d.Mark, d.Brand)) + " " + Styles.Product.Render(d.Product)

	current := a.Shell.Current()
	dots := make([]string, d.Len())
	for i := range dots {
		if i == current {
			dots[i] = Styles.DotActive.Render(glyphDotOn)
		} else {
			dots[i] = Styles.Dot.Render(glyphDot)
		}
	}

	label, glyph := d.Labels.FullscreenEnter, glyphMaximize
	if a.Shell.Fullscreen() {
		label, glyph = d.Labels.FullscreenExit, glyphMinimize
	}
	button := Styles.Button.Render(glyph + " " + label)

	line, dotsX, buttonX := spread(a.width, brand, strings.Join(dots, " "), button)
	zones := make([]hitZone, 0, len(dots)+1)
	for i := range dots {
		zones = append(zones, hitZone{x: dotsX + 2*i, w: 1, action: zoneDot, index: i})
	}
	zones = append(zones, hitZone{x: buttonX, w: lipgloss.Width(button), action: zoneFullscreen})
	return line, zones
}

// renderFooter draws the previous button, the slide counter and the next
// button. Buttons at a boundary render disabled and get no zone.
func (a *AppModel) renderFooter() (string, []hitZone) {
	l := a.Shell.Deck.Labels
	prevText := glyphPrev + " " + l.Previous
	nextText := l.Next + " " + glyphNext

	prev := Styles.Button.Render(prevText)
	if a.Shell.AtFirst() {
		prev = Styles.ButtonDisabled.Render(prevText)
	}
	next := Styles.Button.Render(nextText)
	if a.Shell.AtLast() {
		next = Styles.ButtonDisabled.Render(nextText)
	}
	counter := Styles.Counter.Render(fmt.Sprintf("%d / %d", a.Shell.Current()+1, a.Shell.Deck.Len()))

	line, _, nextX := spread(a.width, prev, counter, next)
	var zones []hitZone
	if !a.Shell.AtFirst() {
		zones = append(zones, hitZone{x: 0, w: lipgloss.Width(prev), action: zonePrev})
	}
	if !a.Shell.AtLast() {
		zones = append(zones, hitZone{x: nextX, w: lipgloss.Width(next), action: zoneNext})
	}
	return line, zones
}
