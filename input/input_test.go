package input

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/terminal"
)

func runeEv(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func keyEv(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func TestDefaultKeyTable_Bindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   terminal.Event
		want Intent
	}{
		{"d", runeEv('d'), move(core.DirRight)},
		{"a", runeEv('a'), move(core.DirLeft)},
		{"w", runeEv('w'), move(core.DirUp)},
		{"s", runeEv('s'), move(core.DirDown)},
		{"l", runeEv('l'), move(core.DirRight)},
		{"h", runeEv('h'), move(core.DirLeft)},
		{"k", runeEv('k'), move(core.DirUp)},
		{"j", runeEv('j'), move(core.DirDown)},
		{"arrow right", keyEv(terminal.KeyRight), move(core.DirRight)},
		{"arrow up", keyEv(terminal.KeyUp), move(core.DirUp)},
		{"q", runeEv('q'), quit},
		{"ctrl c", keyEv(terminal.KeyCtrlC), quit},
		{"escape", keyEv(terminal.KeyEscape), quit},
		{"unbound rune", runeEv('x'), Intent{}},
		{"unbound key", keyEv(terminal.KeyTab), Intent{}},
		{"resize", terminal.Event{Type: terminal.EventResize}, Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Resolve(tt.ev))
		})
	}
}

func TestLoadKeyConfig_MergeOverridesAndUnbinds(t *testing.T) {
	override, err := LoadKeyConfig(
		map[string]string{"i": "up", "q": "none", "space": "quit"},
		map[string]string{"ctrl_q": "quit", "Escape": "none"},
	)
	require.NoError(t, err)

	kt := MergeKeyTable(DefaultKeyTable(), override)

	assert.Equal(t, move(core.DirUp), kt.Resolve(runeEv('i')))
	assert.Equal(t, quit, kt.Resolve(runeEv(' ')))
	assert.Equal(t, Intent{}, kt.Resolve(runeEv('q')))
	assert.Equal(t, quit, kt.Resolve(keyEv(terminal.KeyCtrlQ)))
	assert.Equal(t, Intent{}, kt.Resolve(keyEv(terminal.KeyEscape)))
	// Untouched defaults survive
	assert.Equal(t, move(core.DirDown), kt.Resolve(runeEv('s')))

	// Base table is not mutated
	assert.Equal(t, quit, DefaultKeyTable().Resolve(runeEv('q')))
}

func TestLoadKeyConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		runes   map[string]string
		special map[string]string
	}{
		{"multi-char rune", map[string]string{"ab": "up"}, nil},
		{"unknown action", map[string]string{"x": "jump"}, nil},
		{"unknown key name", nil, map[string]string{"f13": "up"}},
		{"unknown special action", nil, map[string]string{"up": "fly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig(tt.runes, tt.special)
			assert.Error(t, err)
		})
	}
}

func TestParseIntent(t *testing.T) {
	for _, name := range []string{"up", "down", "left", "right", "quit", "none"} {
		in, ok := ParseIntent(name)
		require.True(t, ok, name)
		assert.Equal(t, name, in.String())
	}
	in, ok := ParseIntent(" Quit ")
	require.True(t, ok)
	assert.Equal(t, IntentQuit, in.Type)
}

func TestDirectionSlot_LatestWinsAndRejectsInvalid(t *testing.T) {
	s := NewDirectionSlot(core.DirRight)
	assert.Equal(t, core.DirRight, s.Load())

	s.Store(core.DirUp)
	s.Store(core.DirLeft)
	assert.Equal(t, core.DirLeft, s.Load())

	s.Store(core.Direction(0))
	s.Store(core.Direction(42))
	assert.Equal(t, core.DirLeft, s.Load())

	var empty DirectionSlot
	assert.False(t, empty.Load().Valid())
}

func TestDirectionSlot_ConcurrentAccess(t *testing.T) {
	s := NewDirectionSlot(core.DirRight)
	var wg sync.WaitGroup
	for _, d := range core.Directions {
		wg.Add(1)
		go func(d core.Direction) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.Store(d)
				_ = s.Load()
			}
		}(d)
	}
	wg.Wait()
	assert.True(t, s.Load().Valid())
}

// scriptedSource replays events, then reports closed
type scriptedSource struct {
	events []terminal.Event
}

func (s *scriptedSource) PollEvent() terminal.Event {
	if len(s.events) == 0 {
		return terminal.Event{Type: terminal.EventClosed}
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestDispatcher_DirectionsThenQuit(t *testing.T) {
	src := &scriptedSource{events: []terminal.Event{
		runeEv('w'),
		runeEv('x'),
		{Type: terminal.EventResize, Width: 10, Height: 10},
		keyEv(terminal.KeyLeft),
		runeEv('q'),
		runeEv('s'),
	}}
	slot := NewDirectionSlot(core.DirRight)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		NewDispatcher(src, DefaultKeyTable(), slot, cancel, nil).Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not return on closed source")
	}

	assert.Error(t, ctx.Err(), "quit key cancels")
	// Keys after quit are still drained and applied
	assert.Equal(t, core.DirDown, slot.Load())
}

func TestDispatcher_ErrorCancels(t *testing.T) {
	src := &scriptedSource{events: []terminal.Event{
		{Type: terminal.EventError, Err: errors.New("tty gone")},
		runeEv('w'),
	}}
	slot := NewDirectionSlot(core.DirRight)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewDispatcher(src, DefaultKeyTable(), slot, cancel, nil).Run()

	assert.Error(t, ctx.Err())
	assert.Equal(t, core.DirRight, slot.Load(), "events after an error are not read")
}
