package input

import (
	"maps"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/terminal"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Printable keys
	Runes map[rune]Intent

	// Arrows, Ctrl+*, Esc
	SpecialKeys map[terminal.Key]Intent
}

func move(d core.Direction) Intent {
	return Intent{Type: IntentMove, Direction: d}
}

var quit = Intent{Type: IntentQuit}

// DefaultKeyTable returns the default bindings: d/a/w/s, vi h/j/k/l, arrows, q/Ctrl+C/Esc to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Intent{
			'd': move(core.DirRight),
			'a': move(core.DirLeft),
			'w': move(core.DirUp),
			's': move(core.DirDown),

			'l': move(core.DirRight),
			'h': move(core.DirLeft),
			'k': move(core.DirUp),
			'j': move(core.DirDown),

			'q': quit,
		},
		SpecialKeys: map[terminal.Key]Intent{
			terminal.KeyRight:  move(core.DirRight),
			terminal.KeyLeft:   move(core.DirLeft),
			terminal.KeyUp:     move(core.DirUp),
			terminal.KeyDown:   move(core.DirDown),
			terminal.KeyCtrlC:  quit,
			terminal.KeyEscape: quit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes:       maps.Clone(kt.Runes),
		SpecialKeys: maps.Clone(kt.SpecialKeys),
	}
}

// Resolve maps one key event to an intent; unbound keys and non-key events give IntentNone
func (kt *KeyTable) Resolve(ev terminal.Event) Intent {
	if ev.Type != terminal.EventKey {
		return Intent{}
	}
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.SpecialKeys[ev.Key]
}
