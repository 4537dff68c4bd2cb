// Package ui renders the deck with Bubble Tea.
//
// Core pieces:
//   - Shell: owns the slide index and fullscreen flag, binds the navigation
//     keys while mounted and follows the display's change notifications
//   - AppModel: the root tea.Model laying out header, slide card, footer and
//     help line, with mouse hit zones for the dots and buttons
//   - RenderSlide: pure rendering of one slide for a given width
//   - KeybindRegistry / KeyHandler: key sequence to command dispatch
package ui
