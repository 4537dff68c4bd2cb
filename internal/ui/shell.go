package ui

import (
	"context"
	"io"
	"time"

	"pipelinedeck/internal/deck"
	"pipelinedeck/internal/display"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// FullscreenTimeout bounds a single Enter or Exit request.
const FullscreenTimeout = 5 * time.Second

// VisitRecorder observes navigation and fullscreen changes.
type VisitRecorder interface {
	Visit(s deck.Slide)
	Fullscreen(active bool)
}

// Shell owns the current slide index and the fullscreen flag. It binds the
// presentation keys while mounted and follows the display's change
// notifications.
//
// The fullscreen flag only changes when the display reports a change, never
// when a request is issued.
type Shell struct {
	Deck     *deck.Deck
	Logger   *log.Logger
	Recorder VisitRecorder

	nav     *deck.Navigator
	display display.Display

	fullscreen bool
	pending    bool
	sub        *display.Subscription
	registry   *KeybindRegistry
}

// NewShell creates a Shell at slide 0. disp may be nil, in which case the
// fullscreen toggle is a no-op.
func NewShell(d *deck.Deck, disp display.Display) *Shell {
	return &Shell{
		Deck:    d,
		Logger:  log.New(io.Discard),
		nav:     deck.NewNavigator(d.Len()),
		display: disp,
	}
}

type shellBinding struct {
	seq  string
	desc string
	msg  tea.Msg
}

func (s *Shell) bindings() []shellBinding {
	l := s.Deck.Labels
	return []shellBinding{
		{"right", l.Next, NextSlideMsg{}},
		{"left", l.Previous, PrevSlideMsg{}},
		{"f", l.FullscreenEnter, ToggleFullscreenMsg{}},
		{"F", "", ToggleFullscreenMsg{}},
	}
}

// Mount binds the navigation keys into reg, reads the display's current
// state and subscribes to its changes. The returned command waits for the
// first change. Mounting an already mounted Shell does nothing.
func (s *Shell) Mount(reg *KeybindRegistry) tea.Cmd {
	if s.registry != nil {
		return nil
	}
	s.registry = reg
	for _, b := range s.bindings() {
		msg := b.msg
		reg.BindWithDesc(b.seq, func() tea.Msg { return msg }, b.desc)
	}

	var cmd tea.Cmd
	if s.display != nil {
		s.fullscreen = s.display.Fullscreen()
		s.sub = s.display.Subscribe()
		cmd = waitForFullscreen(s.sub)
	}
	s.visit()
	s.Logger.Debug("shell mounted", "slide", s.nav.Current(), "fullscreen", s.fullscreen)
	return cmd
}

// Unmount removes the key bindings and the display subscription.
func (s *Shell) Unmount() {
	if s.registry == nil {
		return
	}
	for _, b := range s.bindings() {
		s.registry.Unbind(b.seq)
	}
	s.registry = nil
	if s.sub != nil {
		s.sub.Close()
		s.sub = nil
	}
	s.Logger.Debug("shell unmounted")
}

// Mounted reports whether the Shell currently holds its key bindings.
func (s *Shell) Mounted() bool {
	return s.registry != nil
}

// Current returns the visible slide index.
func (s *Shell) Current() int {
	return s.nav.Current()
}

// CurrentSlide returns the visible slide.
func (s *Shell) CurrentSlide() deck.Slide {
	return s.Deck.Slide(s.nav.Current())
}

// AtFirst reports whether the first slide is visible.
func (s *Shell) AtFirst() bool {
	return s.nav.AtFirst()
}

// AtLast reports whether the last slide is visible.
func (s *Shell) AtLast() bool {
	return s.nav.AtLast()
}

// Fullscreen reports the last state confirmed by the display.
func (s *Shell) Fullscreen() bool {
	return s.fullscreen
}

// Pending reports whether a fullscreen request is in flight.
func (s *Shell) Pending() bool {
	return s.pending
}

// GoToSlide shows slide i. It returns false, leaving the index unchanged,
// when i is outside the deck or already visible.
func (s *Shell) GoToSlide(i int) bool {
	prev := s.nav.Current()
	if !s.nav.GoTo(i) {
		s.Logger.Debug("slide index rejected", "index", i)
		return false
	}
	return s.changed(prev)
}

// Next advances one slide. At the last slide it does nothing.
func (s *Shell) Next() bool {
	prev := s.nav.Current()
	s.nav.Next()
	return s.changed(prev)
}

// Previous goes back one slide. At the first slide it does nothing.
func (s *Shell) Previous() bool {
	prev := s.nav.Current()
	s.nav.Previous()
	return s.changed(prev)
}

func (s *Shell) changed(prev int) bool {
	if s.nav.Current() == prev {
		return false
	}
	s.Logger.Debug("slide changed", "from", prev, "to", s.nav.Current())
	s.visit()
	return true
}

func (s *Shell) visit() {
	if s.Recorder != nil {
		s.Recorder.Visit(s.CurrentSlide())
	}
}

// ToggleFullscreen returns a command issuing exactly one Enter or Exit
// request, chosen from the display's current state. Toggles made while a
// request is in flight are dropped.
func (s *Shell) ToggleFullscreen() tea.Cmd {
	if s.display == nil || s.pending {
		return nil
	}
	s.pending = true
	disp := s.display
	entering := !disp.Fullscreen()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), FullscreenTimeout)
		defer cancel()
		var err error
		if entering {
			err = disp.Enter(ctx)
		} else {
			err = disp.Exit(ctx)
		}
		return fullscreenRequestDoneMsg{Entering: entering, Err: err}
	}
}

// Update applies Shell messages. The bool reports whether msg was one.
func (s *Shell) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case NextSlideMsg:
		s.Next()
		return nil, true
	case PrevSlideMsg:
		s.Previous()
		return nil, true
	case GoToSlideMsg:
		s.GoToSlide(msg.Index)
		return nil, true
	case ToggleFullscreenMsg:
		return s.ToggleFullscreen(), true
	case FullscreenChangedMsg:
		if s.sub == nil || msg.sub != s.sub {
			// Delivered after Unmount or from an earlier subscription.
			return nil, true
		}
		if s.fullscreen != msg.Active {
			s.fullscreen = msg.Active
			s.Logger.Info("fullscreen changed", "active", msg.Active)
			if s.Recorder != nil {
				s.Recorder.Fullscreen(msg.Active)
			}
		}
		return waitForFullscreen(s.sub), true
	case fullscreenRequestDoneMsg:
		s.pending = false
		if msg.Err != nil {
			s.Logger.Error("fullscreen request failed", "enter", msg.Entering, "err", msg.Err)
		}
		return nil, true
	}
	return nil, false
}

// waitForFullscreen blocks on the subscription until the next change.
// A closed subscription ends the chain.
func waitForFullscreen(sub *display.Subscription) tea.Cmd {
	return func() tea.Msg {
		active, ok := <-sub.C
		if !ok {
			return nil
		}
		return FullscreenChangedMsg{Active: active, sub: sub}
	}
}
