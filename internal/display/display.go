// Package display is the boundary to the terminal's fullscreen facility.
//
// A Display accepts enter/exit requests and reports confirmed state through
// subscriptions. Requests never change what subscribers observe by
// themselves: only a published change does, whichever path caused it (a
// request, the Esc gesture, or tmux's own zoom toggle).
package display

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	// ErrUnsupported means the environment has no fullscreen facility
	// (output is not a terminal, or tmux is not running).
	ErrUnsupported = errors.New("fullscreen unsupported")
	// ErrNotAttached means the alt screen display has no program to drive.
	ErrNotAttached = errors.New("display not attached to a program")
)

// Display is a fullscreen facility with change notification.
type Display interface {
	// Enter requests fullscreen.
	Enter(ctx context.Context) error
	// Exit requests leaving fullscreen.
	Exit(ctx context.Context) error
	// Fullscreen reports the platform's current state.
	Fullscreen() bool
	// Subscribe attaches a change listener.
	Subscribe() *Subscription
}

// Mode selects a Display implementation.
type Mode string

const (
	ModeAuto      Mode = "auto"
	ModeAltScreen Mode = "altscreen"
	ModeTmux      Mode = "tmux"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeAltScreen, ModeTmux:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown display mode %q", s)
	}
}

// New builds the Display for mode. Auto picks tmux pane zoom when running
// inside tmux and the alternate screen otherwise.
func New(mode Mode, out *os.File) (Display, error) {
	switch mode {
	case ModeTmux:
		return newTmux()
	case ModeAltScreen:
		return NewAltScreen(out), nil
	case ModeAuto, "":
		if InsideTmux() {
			return newTmux()
		}
		return NewAltScreen(out), nil
	default:
		return nil, fmt.Errorf("unknown display mode %q", mode)
	}
}

func newTmux() (Display, error) {
	z, err := NewTmuxZoom(os.Getenv("TMUX_PANE"))
	if err != nil {
		return nil, err
	}
	return z, nil
}

// InsideTmux reports whether the process runs inside a tmux session.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// Subscription receives confirmed fullscreen state. Only the latest value
// is buffered: a slow reader sees the most recent state, not a backlog.
type Subscription struct {
	// C delivers the confirmed state. It is closed by Close.
	C <-chan bool

	ch   chan bool
	id   int
	n    *notifier
	once sync.Once
}

// Close detaches the subscription. No value is delivered after Close
// returns; any pending value is discarded and C is closed.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.n.remove(s.id)
	})
}

// notifier fans state changes out to subscriptions.
type notifier struct {
	mu     sync.Mutex
	subs   map[int]chan bool
	nextID int
}

func (n *notifier) Subscribe() *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]chan bool)
	}
	ch := make(chan bool, 1)
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	return &Subscription{C: ch, ch: ch, id: id, n: n}
}

func (n *notifier) remove(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch, ok := n.subs[id]
	if !ok {
		return
	}
	delete(n.subs, id)
	select {
	case <-ch:
	default:
	}
	close(ch)
}

// publish delivers v to every subscription, replacing any unread value.
func (n *notifier) publish(v bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Subscribers returns the number of attached subscriptions.
func (n *notifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
