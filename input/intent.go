// Package input maps terminal key events to game intents and publishes the latest
// direction through a lock-free slot read once per tick by the game loop.
package input

import (
	"strings"

	"github.com/lixenwraith/vi-snake/core"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentMove            // change heading
	IntentQuit            // q, Ctrl+C, Esc
)

// Intent is the result of resolving one key event
type Intent struct {
	Type      IntentType
	Direction core.Direction // valid for IntentMove
}

// ParseIntent resolves a binding value from the keymap: a direction name or "quit"
func ParseIntent(name string) (Intent, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "quit":
		return Intent{Type: IntentQuit}, true
	case "none":
		// Unbinds a default key
		return Intent{Type: IntentNone}, true
	}
	d, ok := core.ParseDirection(name)
	if !ok {
		return Intent{}, false
	}
	return Intent{Type: IntentMove, Direction: d}, true
}

// String returns the keymap name of the intent
func (i Intent) String() string {
	switch i.Type {
	case IntentMove:
		return i.Direction.String()
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}
