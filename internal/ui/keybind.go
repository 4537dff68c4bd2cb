package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Sequences use tea.KeyMsg.String() notation: "right", "f", "ctrl+c".
// "space" and " " are stored as "SPC".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
// Use BindWithDesc for human-readable hints in the help view.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	} else {
		delete(r.descriptions, n)
	}
}

// Unbind removes a key sequence. Unknown sequences are ignored.
func (r *KeybindRegistry) Unbind(seq string) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		return
	}
	delete(r.bindings, n)
	delete(r.descriptions, n)
	for i, s := range r.order {
		if s == n {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// Len reports the number of bound sequences.
func (r *KeybindRegistry) Len() int {
	return len(r.bindings)
}

// Hints returns all bound sequences with descriptions for display.
// Keys are normalized sequences; values are descriptions (or the sequence if none set).
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd != nil {
			if d, ok := r.descriptions[seq]; ok && d != "" {
				out[seq] = d
			} else {
				out[seq] = seq
			}
		}
	}
	return out
}

// Bindings returns described bindings in registration order, ready for
// help.Model.ShortHelpView. Undescribed sequences are aliases and are left out.
func (r *KeybindRegistry) Bindings() []key.Binding {
	out := make([]key.Binding, 0, len(r.order))
	for _, seq := range r.order {
		desc, ok := r.descriptions[seq]
		if !ok || r.bindings[seq] == nil {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(seq),
			key.WithHelp(keyGlyph(seq), desc),
		))
	}
	return out
}

// keyGlyph is the label shown for a sequence in help output.
func keyGlyph(seq string) string {
	switch seq {
	case "right":
		return "→"
	case "left":
		return "←"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return seq
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler dispatches key presses to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed on.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(keyToSeqPart(msg.String())); c != nil {
		return true, c
	}
	return false, nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
