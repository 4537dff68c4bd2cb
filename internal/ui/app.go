package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
)

// Interceptor sees keys before the application. A display uses it to claim
// its own exit gesture.
type Interceptor interface {
	Intercept(msg tea.KeyMsg) (tea.Cmd, bool)
}

// AppModel is the root model: header, the scrollable slide card, footer and
// help line around a Shell.
type AppModel struct {
	Shell       *Shell
	KeyHandler  *KeyHandler
	Interceptor Interceptor

	// StartFullscreen requests fullscreen once the Shell is mounted.
	StartFullscreen bool

	viewport viewport.Model
	zones    []hitZone
	width    int
	height   int
	shown    int // slide index rendered into the viewport, -1 when stale
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model around shell with q and ctrl+c bound
// to quit.
func NewAppModel(shell *Shell) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "fechar")
	reg.Bind("ctrl+c", tea.Quit)

	m := &AppModel{
		Shell:      shell,
		KeyHandler: NewKeyHandler(reg),
		viewport:   viewport.New(defaultWidth, defaultHeight),
		shown:      -1,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Close unmounts the Shell.
func (m *AppModel) Close() {
	m.Shell.Unmount()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.Shell.Mount(a.KeyHandler.Registry)}
	if a.StartFullscreen && !a.Shell.Fullscreen() {
		cmds = append(cmds, a.Shell.ToggleFullscreen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if a.Interceptor != nil {
			if cmd, ok := a.Interceptor.Intercept(msg); ok {
				return a, cmd
			}
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	cmd, _ := a.Shell.Update(msg)
	a.syncContent()
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	a.syncContent()
	header, headerZones := a.renderHeader()
	card := Styles.Card.Render(a.viewport.View())
	footer, footerZones := a.renderFooter()

	footerY := lipgloss.Height(header) + lipgloss.Height(card)
	a.zones = append(a.zones[:0], headerZones...)
	for _, z := range footerZones {
		z.y = footerY
		a.zones = append(a.zones, z)
	}

	helpLine := RenderKeybindHelp(a.KeyHandler.Registry, a.width)
	return lipgloss.JoinVertical(lipgloss.Left, header, card, footer, helpLine)
}

func (a *AppModel) resize(w, h int) {
	a.width, a.height = w, h
	a.viewport.Width = max(w-Styles.Card.GetHorizontalFrameSize(), 1)
	a.viewport.Height = max(h-chromeHeight-Styles.Card.GetVerticalFrameSize(), 1)
	a.viewport.MouseWheelEnabled = true
	a.shown = -1
	a.syncContent()
}

// syncContent re-renders the slide into the viewport when the index or the
// size changed since the last render.
func (a *AppModel) syncContent() {
	current := a.Shell.Current()
	if current == a.shown {
		return
	}
	a.viewport.SetContent(RenderSlide(a.Shell.CurrentSlide(), a.viewport.Width))
	a.viewport.GotoTop()
	a.shown = current
}

// handleMouse scrolls on the wheel and activates a zone when the left
// button is released over it.
func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		for _, z := range a.zones {
			if z.contains(msg.X, msg.Y) {
				return a.activate(z)
			}
		}
	}
	return nil
}

func (a *AppModel) activate(z hitZone) tea.Cmd {
	switch z.action {
	case zoneDot:
		a.Shell.GoToSlide(z.index)
	case zonePrev:
		a.Shell.Previous()
	case zoneNext:
		a.Shell.Next()
	case zoneFullscreen:
		return a.Shell.ToggleFullscreen()
	}
	a.syncContent()
	return nil
}
