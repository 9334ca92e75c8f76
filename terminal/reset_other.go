//go:build !linux

package terminal

// resetTerminalMode is a no-op where TCGETS is unavailable; term.Restore in Fini covers the normal path
func resetTerminalMode() {}
