package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHotkeysUnsupported indicates global hotkeys are not available on
// this platform.
var ErrHotkeysUnsupported = errors.New("global hotkeys unsupported")

// Hotkeys registers system-wide shortcuts and dispatches their
// callbacks. Callbacks run on the hotkey thread; handlers must hand off
// to the engine's command queue instead of mutating state directly.
type Hotkeys interface {
	Register(sequence string, callback func()) error
	Start() error
	Stop()
}

// NewHotkeys returns the platform-specific hotkey listener.
func NewHotkeys() Hotkeys {
	return newHotkeys()
}

// Binding is a parsed shortcut sequence such as "ctrl+win+alt+a".
type Binding struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Win   bool
	Key   string
}

// ParseBinding splits a human-readable sequence into modifiers and a
// final key token. A trailing "+" names the plus key itself.
func ParseBinding(sequence string) (Binding, error) {
	trimmed := strings.ToLower(strings.TrimSpace(sequence))
	if trimmed == "" {
		return Binding{}, fmt.Errorf("empty hotkey sequence")
	}

	// "ctrl++" splits into two trailing empties: the key is the plus
	// sign itself.
	parts := strings.Split(trimmed, "+")
	if len(parts) >= 2 && parts[len(parts)-1] == "" && parts[len(parts)-2] == "" {
		parts = append(parts[:len(parts)-2], "+")
	}

	var binding Binding
	for i, part := range parts {
		last := i == len(parts)-1
		switch part {
		case "ctrl", "control":
			binding.Ctrl = true
		case "alt":
			binding.Alt = true
		case "shift":
			binding.Shift = true
		case "win", "super", "meta", "cmd":
			binding.Win = true
		case "":
			return Binding{}, fmt.Errorf("malformed hotkey sequence %q", sequence)
		default:
			if !last {
				return Binding{}, fmt.Errorf("unknown modifier %q in %q", part, sequence)
			}
			binding.Key = part
		}
	}

	if binding.Key == "" {
		return Binding{}, fmt.Errorf("hotkey sequence %q has no key", sequence)
	}
	return binding, nil
}
