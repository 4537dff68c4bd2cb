package ui

import "pipelinedeck/internal/display"

// GoToSlideMsg requests the slide at Index. Out-of-range indices are ignored.
type GoToSlideMsg struct {
	Index int
}

// NextSlideMsg advances one slide, clamped at the last.
type NextSlideMsg struct{}

// PrevSlideMsg goes back one slide, clamped at the first.
type PrevSlideMsg struct{}

// ToggleFullscreenMsg asks the display to enter or leave fullscreen.
type ToggleFullscreenMsg struct{}

// FullscreenChangedMsg reports a state change from the display.
type FullscreenChangedMsg struct {
	Active bool

	sub *display.Subscription
}

// fullscreenRequestDoneMsg is returned once an Enter or Exit call completes.
type fullscreenRequestDoneMsg struct {
	Entering bool
	Err      error
}
