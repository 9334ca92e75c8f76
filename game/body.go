package game

import "github.com/lixenwraith/vi-snake/core"

// Body is the ordered sequence of cells occupied by the snake
// Oldest cell sits at index 0 (the discard end), the head at the back
type Body struct {
	cells    []core.Cell
	occupied map[core.Cell]struct{}
}

// NewBody creates a body occupying the given cells, oldest first
func NewBody(cells ...core.Cell) *Body {
	b := &Body{
		cells:    make([]core.Cell, 0, len(cells)+8),
		occupied: make(map[core.Cell]struct{}, len(cells)+8),
	}
	for _, c := range cells {
		b.Grow(c)
	}
	return b
}

// Grow appends head without discarding the tail
func (b *Body) Grow(head core.Cell) {
	b.cells = append(b.cells, head)
	b.occupied[head] = struct{}{}
}

// Advance appends head and discards the oldest cell, length unchanged
func (b *Body) Advance(head core.Cell) {
	if len(b.cells) == 0 {
		b.Grow(head)
		return
	}
	tail := b.cells[0]
	b.cells = append(b.cells[1:], head)
	delete(b.occupied, tail)
	b.occupied[head] = struct{}{}
}

// Contains reports whether c is any body cell
func (b *Body) Contains(c core.Cell) bool {
	_, ok := b.occupied[c]
	return ok
}

// Head returns the newest cell; ok is false for an empty body
func (b *Body) Head() (core.Cell, bool) {
	if len(b.cells) == 0 {
		return core.Cell{}, false
	}
	return b.cells[len(b.cells)-1], true
}

// Len returns the number of cells
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the body, oldest first
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, len(b.cells))
	copy(out, b.cells)
	return out
}
