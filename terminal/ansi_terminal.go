package terminal

import "sync"

// ansiTerminal implements Terminal over a Backend with hand-written escape sequences
type ansiTerminal struct {
	backend Backend

	output      *frameWriter
	input       *inputReader
	resizeCh    chan Event
	syntheticCh chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// backendWriter adapts Backend.Write to io.Writer
type backendWriter struct{ b Backend }

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func newANSITerminal(b Backend, colorMode ColorMode) *ansiTerminal {
	return &ansiTerminal{
		backend:     b,
		output:      newFrameWriter(backendWriter{b}, colorMode),
		syntheticCh: make(chan Event, 16),
		resizeCh:    make(chan Event, 1),
	}
}

// Init enters raw mode and sets up terminal
func (t *ansiTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.input = newInputReader(t.backend)

	t.backend.SetResizeHandler(func(w, h int) {
		ev := Event{Type: EventResize, Width: w, Height: h}
		// Keep only the latest size pending
		select {
		case t.resizeCh <- ev:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ev:
			default:
			}
		}
	})

	t.output.raw(csiAltScreenEnter)
	t.output.raw(csiCursorHide)
	t.output.raw(csiAutoWrapOff)
	t.output.clear()

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state; safe to call multiple times
func (t *ansiTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	t.output.raw(csiSGR0)
	t.output.raw(csiAutoWrapOn)
	t.output.raw(csiCursorShow)
	t.output.raw(csiAltScreenExit)

	t.backend.Fini()
	t.finalized = true
}

func (t *ansiTerminal) Size() (int, int) {
	return t.backend.Size()
}

// Draw repaints the screen; ignored outside the Init/Fini window
func (t *ansiTerminal) Draw(f Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.output.draw(f)
}

// PollEvent blocks until the next key, resize or synthetic event
// Returns EventClosed once the terminal is finalized and input is drained
func (t *ansiTerminal) PollEvent() Event {
	t.mu.Lock()
	input := t.input
	t.mu.Unlock()

	if input == nil {
		// Never initialized, only synthetic events can arrive
		return <-t.syntheticCh
	}

	select {
	case ev := <-t.syntheticCh:
		return ev
	case ev := <-t.resizeCh:
		return ev
	case ev := <-input.events():
		return ev
	}
}

// PostEvent injects a synthetic event without blocking
func (t *ansiTerminal) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
	}
}
