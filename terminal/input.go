package terminal

import (
	"sync"
	"time"
	"unicode/utf8"
)

// inputReader turns raw backend bytes into events on a buffered channel
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool

	// Persistent buffer, holds partial escape or UTF-8 sequences between reads
	buf []byte
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 64),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	go r.readLoop()
}

// stop signals the reader and waits briefly for it to exit
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
		// Reader stuck in a blocking read, proceed anyway
	}
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.send(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Poll timeout: a buffered lone ESC is the Escape key
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.send(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.send(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := parseInput(r.buf, r.send)
		r.buf = append(r.buf[:0], r.buf[consumed:]...)
	}
}

// send delivers without blocking; a full queue drops the event
func (r *inputReader) send(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}

// parseInput emits every complete event in data and returns the bytes consumed
// Trailing partial sequences are left for the next read
func parseInput(data []byte, emit func(Event)) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i // wait for more, or the escape timeout
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			if ev.Key != KeyNone {
				emit(ev)
			}
			i += consumed

		case b < 0x20:
			if k := ctrlKeys[b]; k != KeyNone {
				emit(Event{Type: EventKey, Key: k})
			}
			i++

		case b == 0x7f:
			emit(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			emit(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			i += size
		}
	}
	return i
}

// parseEscape parses a sequence starting with ESC, returns 0 when incomplete
func parseEscape(data []byte) (int, Event) {
	switch next := data[1]; {
	case next == '[':
		return parseCSI(data)
	case next == 'O':
		if len(data) < 3 {
			return 0, Event{}
		}
		if k, ok := csiFinal[data[2]]; ok {
			return 3, Event{Type: EventKey, Key: k}
		}
		return 3, Event{Type: EventKey, Key: KeyNone}
	case next == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case next >= 0x20 && next < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(next), Modifiers: ModAlt}
	case next < 0x20:
		return 2, Event{Type: EventKey, Key: ctrlKeys[next], Modifiers: ModAlt}
	default:
		// ESC followed by a non-ASCII byte, treat as plain Escape
		return 1, Event{Type: EventKey, Key: KeyEscape}
	}
}

// parseCSI handles ESC [ params final
func parseCSI(data []byte) (int, Event) {
	const maxLen = 16

	params := [2]int{}
	np := 0
	seen := false

	for i := 2; i < len(data) && i < maxLen; i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			if np < len(params) {
				params[np] = params[np]*10 + int(b-'0')
			}
			seen = true
		case b == ';':
			np++
		case b == '~':
			k := csiTilde[params[0]]
			return i + 1, Event{Type: EventKey, Key: k, Modifiers: xtermModifier(paramAt(params, np, seen, 1))}
		case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z'):
			k := csiFinal[b]
			return i + 1, Event{Type: EventKey, Key: k, Modifiers: xtermModifier(paramAt(params, np, seen, 1))}
		case b < 0x20 || b > 0x7e:
			// Malformed, drop the introducer only
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}

	if len(data) >= maxLen {
		// Over-long unknown sequence, discard it
		return maxLen, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{}
}

func paramAt(params [2]int, np int, seen bool, idx int) int {
	if !seen || idx > np || idx >= len(params) {
		return 0
	}
	return params[idx]
}
