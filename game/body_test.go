package game

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestBody_GrowAddsOne(t *testing.T) {
	b := NewBody(core.Cell{Row: 0, Col: 0})
	b.Grow(core.Cell{Row: 0, Col: 1})

	if b.Len() != 2 {
		t.Fatalf("Expected length 2, got %d", b.Len())
	}
	head, ok := b.Head()
	if !ok || head != (core.Cell{Row: 0, Col: 1}) {
		t.Errorf("Expected head (0,1), got %v", head)
	}
	if !b.Contains(core.Cell{Row: 0, Col: 0}) {
		t.Error("Expected tail to stay after grow")
	}
}

func TestBody_AdvanceKeepsLength(t *testing.T) {
	b := NewBody(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 1}, core.Cell{Row: 0, Col: 2})

	for i := 3; i < 20; i++ {
		b.Advance(core.Cell{Row: 0, Col: i % 10})
		if b.Len() != 3 {
			t.Fatalf("step %d: expected length 3, got %d", i, b.Len())
		}
	}

	want := []core.Cell{{Row: 0, Col: 7}, {Row: 0, Col: 8}, {Row: 0, Col: 9}}
	got := b.Cells()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if b.Contains(core.Cell{Row: 0, Col: 6}) {
		t.Error("Expected discarded tail to leave the occupancy set")
	}
}

func TestBody_CellsIsCopy(t *testing.T) {
	b := NewBody(core.Cell{Row: 1, Col: 1})
	cells := b.Cells()
	cells[0] = core.Cell{Row: 5, Col: 5}

	if head, _ := b.Head(); head != (core.Cell{Row: 1, Col: 1}) {
		t.Errorf("Mutating Cells() leaked into body: %v", head)
	}
}

func TestBody_EmptyHead(t *testing.T) {
	b := NewBody()
	if _, ok := b.Head(); ok {
		t.Error("Expected no head on empty body")
	}
	b.Advance(core.Cell{Row: 2, Col: 2})
	if b.Len() != 1 {
		t.Errorf("Expected advance on empty body to seed it, got length %d", b.Len())
	}
}
