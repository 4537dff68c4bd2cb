package ui

// icons maps the icon names used in deck content to terminal glyphs.
var icons = map[string]string{
	"robot":      "🤖",
	"bar-chart":  "📊",
	"gear":       "⚙",
	"target":     "🎯",
	"books":      "📚",
	"memo":       "📝",
	"building":   "🏢",
	"database":   "🗄",
	"cloud":      "☁",
	"refresh":    "🔄",
	"folder":     "📁",
	"wrench":     "🔧",
	"graduation": "🎓",
	"download":   "📥",
	"binary":     "🔢",
	"chart-line": "📈",
	"zap":        "⚡",
	"shield":     "🛡",
	"file-check": "✅",
	"search":     "🔍",
	"lightbulb":  "💡",
	"server":     "🖥",
	"calendar":   "📅",
}

// Chrome glyphs.
const (
	glyphPrev     = "‹"
	glyphNext     = "›"
	glyphMaximize = "⛶"
	glyphMinimize = "⤡"
	glyphArrow    = "↓"
	glyphDot      = "○"
	glyphDotOn    = "●"
	glyphRail     = "│"
)

// Icon returns the glyph for name, or "" when the name is unknown.
func Icon(name string) string {
	return icons[name]
}

// withIcon prefixes text with the glyph for name when there is one.
func withIcon(name, text string) string {
	if g := Icon(name); g != "" {
		return g + " " + text
	}
	return text
}
