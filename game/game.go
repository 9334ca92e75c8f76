// Package game implements the snake rules: body, item placement, the per-tick state machine
// and the session loop that paces it.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// StartCell is where the body spawns
var StartCell = core.Cell{Row: 0, Col: 0}

// StartDirection is the heading before any key is pressed
const StartDirection = core.DirRight

// Game owns body, items, score and speed; not safe for concurrent use
type Game struct {
	rules  Rules
	grid   core.Grid
	placer *Placer

	body   *Body
	food   core.Cell
	hazard core.Cell

	score    int
	interval time.Duration
	tick     uint64

	phase   Phase
	outcome Outcome
}

// New creates a running game with a one-cell body at StartCell and freshly placed items
func New(rules Rules, interval time.Duration, rng *rand.Rand) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %v", interval)
	}

	grid := core.NewGrid(rules.GridSize)
	g := &Game{
		rules:    rules,
		grid:     grid,
		placer:   NewPlacer(grid, rng),
		body:     NewBody(StartCell),
		interval: interval,
	}
	if err := g.placeItems(); err != nil {
		return nil, fmt.Errorf("initial placement: %w", err)
	}
	return g, nil
}

// Step advances one tick in direction dir
// Collision is checked before consumption: a head on both body and food ends the game
func (g *Game) Step(dir core.Direction) StepResult {
	if g.phase == PhaseOver {
		return StepResult{Kind: StepEnded, Outcome: g.outcome}
	}

	head, _ := g.body.Head()
	next := g.grid.NextHead(head, dir)
	g.tick++

	switch {
	case g.body.Contains(next):
		return g.end(OutcomeSelfCollision, next)

	case g.rules.Hazard && next == g.hazard:
		return g.end(OutcomeHazard, next)

	case next == g.food:
		g.body.Grow(next)
		g.score += g.rules.FoodReward
		g.interval = g.rules.NextInterval(g.interval)
		if err := g.placeItems(); err != nil {
			if errors.Is(err, ErrGridFull) {
				return g.end(OutcomeBoardFull, next)
			}
			panic(fmt.Errorf("game: item placement: %w", err))
		}
		return StepResult{Kind: StepAte, Head: next}

	default:
		g.body.Advance(next)
		return StepResult{Kind: StepMoved, Head: next}
	}
}

// Quit ends a running game without a collision
func (g *Game) Quit() {
	if g.phase == PhaseRunning {
		g.phase = PhaseOver
		g.outcome = OutcomeQuit
	}
}

// placeItems draws food, then the hazard away from the new food
func (g *Game) placeItems() error {
	food, err := g.placer.Place(g.body)
	if err != nil {
		return err
	}
	g.food = food

	if !g.rules.Hazard {
		return nil
	}
	hazard, err := g.placer.Place(g.body, food)
	if err != nil {
		return err
	}
	g.hazard = hazard
	return nil
}

func (g *Game) end(o Outcome, head core.Cell) StepResult {
	g.phase = PhaseOver
	g.outcome = o
	return StepResult{Kind: StepEnded, Head: head, Outcome: o}
}

// Phase returns the state machine position
func (g *Game) Phase() Phase { return g.phase }

// Outcome returns why the game ended, OutcomeNone while running
func (g *Game) Outcome() Outcome { return g.outcome }

// Score returns the accumulated score
func (g *Game) Score() int { return g.score }

// Interval returns the current tick interval
func (g *Game) Interval() time.Duration { return g.interval }

// Snapshot copies the state for rendering
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		GridSize:  g.grid.Size,
		Body:      g.body.Cells(),
		Food:      g.food,
		Hazard:    g.hazard,
		HasHazard: g.rules.Hazard,
		Score:     g.score,
		Length:    g.body.Len(),
		Interval:  g.interval,
		Phase:     g.phase,
		Outcome:   g.outcome,
	}
}

// Result summarizes the game so far
func (g *Game) Result() Result {
	return Result{
		Outcome:  g.outcome,
		Score:    g.score,
		Length:   g.body.Len(),
		Ticks:    g.tick,
		Interval: g.interval,
	}
}
