package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer is anything that must be restored before the process dies, in practice the terminal
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashReset    func()
)

// SetCrashTerminal registers the terminal restored by HandleCrash
// reset runs after the terminal's Fini, or alone when no terminal is registered; either may be nil
func SetCrashTerminal(t Finalizer, reset func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
	crashReset = reset
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreTerminal()
	os.Stdout.Sync()

	// \r\n keeps the trace readable if the terminal is still raw
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// restoreTerminal finalizes the registered terminal, then always applies the raw reset
// Fini may itself panic on a half-initialized terminal; the reset still runs
func restoreTerminal() {
	crashMu.Lock()
	t, reset := crashTerminal, crashReset
	crashMu.Unlock()

	if t != nil {
		func() {
			defer func() { recover() }()
			t.Fini()
		}()
	}
	if reset != nil {
		reset()
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
