package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Draw replaces the screen contents with frame, top-left anchored
	Draw(f Frame)

	// PollEvent blocks until next input event
	PollEvent() Event

	// PostEvent injects a synthetic event, used to unblock PollEvent on shutdown
	PostEvent(Event)
}

// Kind selects a backend
type Kind string

const (
	KindANSI  Kind = "ansi"
	KindTcell Kind = "tcell"
)

// ParseKind validates a backend name
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindANSI, KindTcell:
		return k, nil
	case "":
		return KindANSI, nil
	default:
		return "", fmt.Errorf("unknown terminal backend %q (want ansi or tcell)", s)
	}
}

// New creates a terminal of the given kind; Init has not been called
func New(kind Kind, colorMode ColorMode) (Terminal, error) {
	switch kind {
	case KindANSI, "":
		return newANSITerminal(newBackend(), colorMode), nil
	case KindTcell:
		return NewTcell(nil)
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", kind)
	}
}

// NewTcell wraps an existing tcell screen, nil opens the real console
// Tests pass tcell.NewSimulationScreen
func NewTcell(screen tcell.Screen) (Terminal, error) {
	t, err := newTcellTerminal(screen)
	if err != nil {
		return nil, err
	}
	return t, nil
}
