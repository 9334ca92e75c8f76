package game

import (
	"errors"
	"math/rand"

	"github.com/lixenwraith/vi-snake/core"
)

// ErrGridFull is returned when every cell is taken by the body or an exclusion
var ErrGridFull = errors.New("game: no free cell left for item placement")

// Occupant reports whether a cell is taken
type Occupant interface {
	Contains(c core.Cell) bool
}

// Placer draws item cells uniformly from the free cells of a grid
type Placer struct {
	grid        core.Grid
	rng         *rand.Rand
	maxAttempts int
}

// NewPlacer creates a placer; rejection sampling gives up after PlacementAttemptFactor*area draws
func NewPlacer(grid core.Grid, rng *rand.Rand) *Placer {
	return &Placer{
		grid:        grid,
		rng:         rng,
		maxAttempts: grid.Area() * PlacementAttemptFactor,
	}
}

// Place returns a cell that is neither in body nor equal to any of exclude
// Samples at random first, then scans the free cells so it terminates on a crowded board
func (p *Placer) Place(body Occupant, exclude ...core.Cell) (core.Cell, error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		c := core.Cell{Row: p.rng.Intn(p.grid.Size), Col: p.rng.Intn(p.grid.Size)}
		if p.free(c, body, exclude) {
			return c, nil
		}
	}

	free := make([]core.Cell, 0, 8)
	for i := 0; i < p.grid.Area(); i++ {
		if c := p.grid.At(i); p.free(c, body, exclude) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Cell{}, ErrGridFull
	}
	return free[p.rng.Intn(len(free))], nil
}

func (p *Placer) free(c core.Cell, body Occupant, exclude []core.Cell) bool {
	if body.Contains(c) {
		return false
	}
	for _, x := range exclude {
		if c == x {
			return false
		}
	}
	return true
}
