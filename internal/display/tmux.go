package display

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// DefaultPollInterval is how often Watch re-reads the zoom flag.
const DefaultPollInterval = 500 * time.Millisecond

// TmuxRunner runs a tmux command and returns its trimmed stdout.
type TmuxRunner func(ctx context.Context, args ...string) (string, error)

// execTmux runs tmux via exec. The app is expected to run inside tmux, so
// commands target the current server.
func execTmux(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "tmux", args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux %s: %w: %s", args[0], err, strings.TrimSpace(errOut.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// TmuxZoom treats tmux pane zoom (resize-pane -Z) as fullscreen.
// Zoom toggled from tmux itself (prefix+z) is picked up by Watch.
type TmuxZoom struct {
	notifier

	run  TmuxRunner
	pane string

	mu     sync.Mutex
	zoomed bool
}

// Ensure TmuxZoom implements Display.
var _ Display = (*TmuxZoom)(nil)

// NewTmuxZoom creates a zoom display for pane (e.g. "%3"; empty targets the
// current pane). Returns ErrUnsupported outside tmux.
func NewTmuxZoom(pane string) (*TmuxZoom, error) {
	if !InsideTmux() {
		return nil, ErrUnsupported
	}
	return NewTmuxZoomWithRunner(pane, execTmux), nil
}

// NewTmuxZoomWithRunner creates a zoom display that runs tmux through run.
func NewTmuxZoomWithRunner(pane string, run TmuxRunner) *TmuxZoom {
	return &TmuxZoom{run: run, pane: pane}
}

func (t *TmuxZoom) target() []string {
	if t.pane == "" {
		return nil
	}
	return []string{"-t", t.pane}
}

// Zoomed queries tmux for the window zoom flag of the pane.
func (t *TmuxZoom) Zoomed(ctx context.Context) (bool, error) {
	args := append([]string{"display-message", "-p"}, t.target()...)
	args = append(args, "#{window_zoomed_flag}")
	out, err := t.run(ctx, args...)
	if err != nil {
		return false, err
	}
	switch out {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("parse zoom flag %q", out)
	}
}

// Enter implements Display.
func (t *TmuxZoom) Enter(ctx context.Context) error {
	return t.set(ctx, true)
}

// Exit implements Display.
func (t *TmuxZoom) Exit(ctx context.Context) error {
	return t.set(ctx, false)
}

// Fullscreen implements Display. Returns the last observed zoom flag.
func (t *TmuxZoom) Fullscreen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.zoomed
}

// set toggles zoom only when tmux reports the other state; resize-pane -Z
// is itself a toggle.
func (t *TmuxZoom) set(ctx context.Context, zoom bool) error {
	current, err := t.Zoomed(ctx)
	if err != nil {
		return err
	}
	if current != zoom {
		args := append([]string{"resize-pane", "-Z"}, t.target()...)
		if _, err := t.run(ctx, args...); err != nil {
			return err
		}
	}
	return t.Refresh(ctx)
}

// Refresh re-reads the zoom flag and publishes it if it changed.
func (t *TmuxZoom) Refresh(ctx context.Context) error {
	zoomed, err := t.Zoomed(ctx)
	if err != nil {
		return err
	}
	t.mu.Lock()
	changed := zoomed != t.zoomed
	t.zoomed = zoomed
	t.mu.Unlock()
	if changed {
		t.publish(zoomed)
	}
	return nil
}

// Watch polls the zoom flag until ctx is done. Query errors are skipped;
// the next tick tries again.
func (t *TmuxZoom) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = t.Refresh(ctx)
		}
	}
}
