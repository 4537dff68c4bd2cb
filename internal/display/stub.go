package display

import (
	"context"
	"sync"
)

// Stub is an in-memory Display for tests. It counts requests and lets the
// caller decide how the "platform" responds.
type Stub struct {
	notifier

	mu     sync.Mutex
	active bool
	enters int
	exits  int

	// Fail, when set, is returned by every request without changing state.
	Fail error
	// Defer, when true, accepts requests without confirming them; call
	// Confirm to publish the outcome later.
	Defer bool
}

// Ensure Stub implements Display.
var _ Display = (*Stub)(nil)

// Enter implements Display.
func (s *Stub) Enter(ctx context.Context) error {
	return s.request(ctx, true)
}

// Exit implements Display.
func (s *Stub) Exit(ctx context.Context) error {
	return s.request(ctx, false)
}

func (s *Stub) request(ctx context.Context, active bool) error {
	s.mu.Lock()
	if active {
		s.enters++
	} else {
		s.exits++
	}
	if s.Fail != nil {
		err := s.Fail
		s.mu.Unlock()
		return err
	}
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.Defer {
		s.mu.Unlock()
		return nil
	}
	s.active = active
	s.mu.Unlock()
	s.publish(active)
	return nil
}

// Fullscreen implements Display.
func (s *Stub) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Confirm sets the platform state and publishes it.
func (s *Stub) Confirm(active bool) {
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
	s.publish(active)
}

// ExternalExit simulates leaving fullscreen outside the application.
func (s *Stub) ExternalExit() {
	s.Confirm(false)
}

// Enters returns the number of enter requests received.
func (s *Stub) Enters() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enters
}

// Exits returns the number of exit requests received.
func (s *Stub) Exits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exits
}
