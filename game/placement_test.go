package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

// fillExcept builds a body covering every cell except the listed ones
func fillExcept(grid core.Grid, keep ...core.Cell) *Body {
	skip := make(map[core.Cell]bool, len(keep))
	for _, c := range keep {
		skip[c] = true
	}
	b := NewBody()
	for i := 0; i < grid.Area(); i++ {
		if c := grid.At(i); !skip[c] {
			b.Grow(c)
		}
	}
	return b
}

func TestPlace_AvoidsBodyAndExcluded(t *testing.T) {
	grid := core.NewGrid(10)
	rng := rand.New(rand.NewSource(7))
	p := NewPlacer(grid, rng)

	// Body sizes from a single cell up to area-2
	for n := 1; n <= grid.Area()-2; n++ {
		body := NewBody()
		for _, i := range rng.Perm(grid.Area())[:n] {
			body.Grow(grid.At(i))
		}

		food, err := p.Place(body)
		if err != nil {
			t.Fatalf("n=%d: unexpected error placing food: %v", n, err)
		}
		hazard, err := p.Place(body, food)
		if err != nil {
			t.Fatalf("n=%d: unexpected error placing hazard: %v", n, err)
		}

		if body.Contains(food) || body.Contains(hazard) {
			t.Fatalf("n=%d: item placed on body (food %v, hazard %v)", n, food, hazard)
		}
		if food == hazard {
			t.Fatalf("n=%d: hazard placed on food at %v", n, food)
		}
		if !grid.Contains(food) || !grid.Contains(hazard) {
			t.Fatalf("n=%d: item outside grid", n)
		}
	}
}

func TestPlace_FindsLastFreeCell(t *testing.T) {
	grid := core.NewGrid(10)
	free := core.Cell{Row: 9, Col: 9}
	excluded := core.Cell{Row: 4, Col: 4}
	body := fillExcept(grid, free, excluded)

	p := NewPlacer(grid, rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		got, err := p.Place(body, excluded)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != free {
			t.Fatalf("Expected %v, got %v", free, got)
		}
	}
}

func TestPlace_GridFull(t *testing.T) {
	grid := core.NewGrid(4)
	only := core.Cell{Row: 2, Col: 3}
	body := fillExcept(grid, only)

	p := NewPlacer(grid, rand.New(rand.NewSource(3)))
	if _, err := p.Place(body, only); !errors.Is(err, ErrGridFull) {
		t.Errorf("Expected ErrGridFull, got %v", err)
	}
}

func TestPlace_RoughlyUniform(t *testing.T) {
	grid := core.NewGrid(3)
	body := NewBody(core.Cell{Row: 1, Col: 1})
	p := NewPlacer(grid, rand.New(rand.NewSource(42)))

	counts := make(map[core.Cell]int)
	const draws = 8000
	for i := 0; i < draws; i++ {
		c, err := p.Place(body)
		if err != nil {
			t.Fatal(err)
		}
		counts[c]++
	}

	if len(counts) != 8 {
		t.Fatalf("Expected 8 distinct free cells, got %d", len(counts))
	}
	for c, n := range counts {
		// Expected 1000 per cell
		if n < 800 || n > 1200 {
			t.Errorf("cell %v drawn %d times, outside tolerance", c, n)
		}
	}
}
