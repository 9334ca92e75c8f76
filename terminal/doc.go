// Package terminal provides raw-mode terminal control for the game.
//
// Two backends share one Terminal interface:
//   - ansi: direct ANSI sequences over stdin/stdout, raw mode via golang.org/x/term,
//     poll-based reads and window size via golang.org/x/sys/unix
//   - tcell: github.com/gdamore/tcell/v2 screen, for terminals the ANSI path handles poorly
//
// Both enter the alternate screen on Init and restore the original mode on Fini,
// so callers acquire raw mode with Init and release it with a deferred Fini.
package terminal
