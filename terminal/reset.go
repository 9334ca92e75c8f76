package terminal

import (
	"io"
	"os"
)

// EmergencyReset restores a usable terminal after a crash without the Terminal instance
// Writes the visible-state sequences to w, then forces cooked mode on /dev/tty
func EmergencyReset(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAutoWrapOn)
	w.Write(csiAltScreenExit)
	resetTerminalMode()
}
