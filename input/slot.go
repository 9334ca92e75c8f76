package input

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
)

// DirectionSlot holds the most recent requested direction
// Written by the input goroutine, read once per tick by the game loop; latest write wins
type DirectionSlot struct {
	v atomic.Uint32
}

// NewDirectionSlot returns a slot holding initial
func NewDirectionSlot(initial core.Direction) *DirectionSlot {
	s := &DirectionSlot{}
	s.Store(initial)
	return s
}

// Store publishes d; invalid directions are ignored
func (s *DirectionSlot) Store(d core.Direction) {
	if !d.Valid() {
		return
	}
	s.v.Store(uint32(d))
}

// Load returns the latest direction, zero if none was ever stored
func (s *DirectionSlot) Load() core.Direction {
	return core.Direction(s.v.Load())
}
