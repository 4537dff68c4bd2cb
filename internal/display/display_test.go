package display

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"altscreen", ModeAltScreen, false},
		{"tmux", ModeTmux, false},
		{"kiosk", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSubscription_LatestValueWins(t *testing.T) {
	var n notifier
	sub := n.Subscribe()
	defer sub.Close()

	n.publish(true)
	n.publish(false)
	n.publish(true)

	assert.Equal(t, true, <-sub.C)
	select {
	case v := <-sub.C:
		t.Fatalf("expected a single buffered value, got extra %v", v)
	default:
	}
}

func TestSubscription_CloseStopsDelivery(t *testing.T) {
	var n notifier
	sub := n.Subscribe()
	n.publish(true)
	sub.Close()
	sub.Close() // idempotent

	assert.Equal(t, 0, n.Subscribers())
	n.publish(false)

	v, ok := <-sub.C
	assert.False(t, ok, "channel should be closed")
	assert.False(t, v, "pending value should be discarded")
}

func TestSubscription_FanOut(t *testing.T) {
	var n notifier
	a, b := n.Subscribe(), n.Subscribe()
	defer a.Close()
	defer b.Close()
	assert.Equal(t, 2, n.Subscribers())

	n.publish(true)
	assert.True(t, <-a.C)
	assert.True(t, <-b.C)
}

func TestStub_RequestsAndConfirmation(t *testing.T) {
	s := &Stub{}
	sub := s.Subscribe()
	defer sub.Close()

	require.NoError(t, s.Enter(context.Background()))
	assert.Equal(t, 1, s.Enters())
	assert.True(t, s.Fullscreen())
	assert.True(t, <-sub.C)

	require.NoError(t, s.Exit(context.Background()))
	assert.Equal(t, 1, s.Exits())
	assert.False(t, <-sub.C)
}

func TestStub_FailLeavesState(t *testing.T) {
	boom := errors.New("permission denied")
	s := &Stub{Fail: boom}
	sub := s.Subscribe()
	defer sub.Close()

	assert.ErrorIs(t, s.Enter(context.Background()), boom)
	assert.Equal(t, 1, s.Enters())
	assert.False(t, s.Fullscreen())
	select {
	case v := <-sub.C:
		t.Fatalf("failed request must not publish, got %v", v)
	default:
	}
}

func TestStub_DeferAndExternalExit(t *testing.T) {
	s := &Stub{Defer: true}
	sub := s.Subscribe()
	defer sub.Close()

	require.NoError(t, s.Enter(context.Background()))
	assert.False(t, s.Fullscreen(), "deferred request is not confirmed yet")

	s.Confirm(true)
	assert.True(t, <-sub.C)

	s.ExternalExit()
	assert.False(t, <-sub.C)
	assert.False(t, s.Fullscreen())
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) sent() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}

func openPTY(t *testing.T) *os.File {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		tty.Close()
		ptmx.Close()
	})
	return tty
}

func TestAltScreen_RequiresTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	a := NewAltScreen(w)
	a.Attach(&recordingSender{})
	assert.ErrorIs(t, a.Enter(context.Background()), ErrUnsupported)
	assert.False(t, a.Fullscreen())

	assert.ErrorIs(t, NewAltScreen(nil).Enter(context.Background()), ErrUnsupported)
}

func TestAltScreen_RequiresProgram(t *testing.T) {
	a := NewAltScreen(openPTY(t))
	assert.ErrorIs(t, a.Enter(context.Background()), ErrNotAttached)
}

func TestAltScreen_EnterExitSendsScreenMessages(t *testing.T) {
	a := NewAltScreen(openPTY(t))
	sender := &recordingSender{}
	a.Attach(sender)
	sub := a.Subscribe()
	defer sub.Close()

	require.NoError(t, a.Enter(context.Background()))
	assert.True(t, <-sub.C)
	assert.True(t, a.Fullscreen())

	// A second enter is a no-op.
	require.NoError(t, a.Enter(context.Background()))

	require.NoError(t, a.Exit(context.Background()))
	assert.False(t, <-sub.C)

	msgs := sender.sent()
	require.Len(t, msgs, 2)
	assert.Equal(t, tea.EnterAltScreen(), msgs[0])
	assert.Equal(t, tea.ExitAltScreen(), msgs[1])
}

func TestAltScreen_InterceptEsc(t *testing.T) {
	a := NewAltScreen(openPTY(t))
	a.Attach(&recordingSender{})
	sub := a.Subscribe()
	defer sub.Close()

	_, consumed := a.Intercept(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, consumed, "esc is not consumed while windowed")

	require.NoError(t, a.Enter(context.Background()))
	<-sub.C

	_, consumed = a.Intercept(tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, consumed)

	cmd, consumed := a.Intercept(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.False(t, <-sub.C)
	assert.False(t, a.Fullscreen())
}

// fakeTmux emulates the zoom flag of a single pane.
type fakeTmux struct {
	mu     sync.Mutex
	zoomed bool
	calls  [][]string
	err    error
}

func (f *fakeTmux) run(_ context.Context, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	switch args[0] {
	case "display-message":
		if f.zoomed {
			return "1", nil
		}
		return "0", nil
	case "resize-pane":
		f.zoomed = !f.zoomed
		return "", nil
	}
	return "", errors.New("unexpected tmux command")
}

func (f *fakeTmux) setZoomed(z bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.zoomed = z
}

func (f *fakeTmux) resizes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c[0] == "resize-pane" {
			n++
		}
	}
	return n
}

func TestTmuxZoom_EnterExit(t *testing.T) {
	fake := &fakeTmux{}
	z := NewTmuxZoomWithRunner("%3", fake.run)
	sub := z.Subscribe()
	defer sub.Close()

	require.NoError(t, z.Enter(context.Background()))
	assert.True(t, <-sub.C)
	assert.True(t, z.Fullscreen())

	// Already zoomed: no second toggle.
	require.NoError(t, z.Enter(context.Background()))
	assert.Equal(t, 1, fake.resizes())

	require.NoError(t, z.Exit(context.Background()))
	assert.False(t, <-sub.C)
	assert.Equal(t, 2, fake.resizes())

	assert.Contains(t, fake.calls[0], "%3")
}

func TestTmuxZoom_ErrorPropagates(t *testing.T) {
	fake := &fakeTmux{err: errors.New("no server running")}
	z := NewTmuxZoomWithRunner("", fake.run)
	assert.Error(t, z.Enter(context.Background()))
	assert.False(t, z.Fullscreen())
}

func TestTmuxZoom_WatchSeesExternalUnzoom(t *testing.T) {
	fake := &fakeTmux{}
	z := NewTmuxZoomWithRunner("", fake.run)
	sub := z.Subscribe()
	defer sub.Close()

	require.NoError(t, z.Enter(context.Background()))
	require.True(t, <-sub.C)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go z.Watch(ctx, 5*time.Millisecond)

	fake.setZoomed(false) // prefix+z in tmux
	select {
	case v := <-sub.C:
		assert.False(t, v)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not report the external unzoom")
	}
}

func TestNewTmuxZoom_OutsideTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	_, err := NewTmuxZoom("")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = New(ModeTmux, nil)
	assert.ErrorIs(t, err, ErrUnsupported)

	d, err := New(ModeAuto, nil)
	require.NoError(t, err)
	assert.IsType(t, &AltScreen{}, d)
}
