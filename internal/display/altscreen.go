package display

import (
	"context"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Sender delivers messages into a running Bubble Tea program.
// *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// AltScreen treats the terminal's alternate screen buffer as fullscreen.
type AltScreen struct {
	notifier

	mu      sync.Mutex
	program Sender
	active  bool
	tty     bool
}

// Ensure AltScreen implements Display.
var _ Display = (*AltScreen)(nil)

// NewAltScreen creates an alt screen display writing to out. Requests fail
// with ErrUnsupported when out is not a terminal.
func NewAltScreen(out *os.File) *AltScreen {
	return &AltScreen{tty: isTerminal(out)}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Attach sets the program that receives screen switch messages.
func (a *AltScreen) Attach(p Sender) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.program = p
}

// Enter implements Display.
func (a *AltScreen) Enter(ctx context.Context) error {
	return a.set(ctx, true)
}

// Exit implements Display.
func (a *AltScreen) Exit(ctx context.Context) error {
	return a.set(ctx, false)
}

// Fullscreen implements Display.
func (a *AltScreen) Fullscreen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

func (a *AltScreen) set(ctx context.Context, active bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	if !a.tty {
		a.mu.Unlock()
		return ErrUnsupported
	}
	if a.program == nil {
		a.mu.Unlock()
		return ErrNotAttached
	}
	if a.active == active {
		a.mu.Unlock()
		return nil
	}
	p := a.program
	a.active = active
	a.mu.Unlock()

	// Send blocks until the program loop takes the message, so it must not
	// run on the loop itself. Requests arrive from tea.Cmd goroutines.
	if active {
		p.Send(tea.EnterAltScreen())
	} else {
		p.Send(tea.ExitAltScreen())
	}
	a.publish(active)
	return nil
}

// Intercept handles the escape gesture before the application sees the
// key: Esc while fullscreen leaves the alternate screen. It returns the
// command performing the exit and whether the key was consumed.
func (a *AltScreen) Intercept(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type != tea.KeyEsc || !a.Fullscreen() {
		return nil, false
	}
	return func() tea.Msg {
		_ = a.Exit(context.Background())
		return nil
	}, true
}
