package game

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// Phase is the state machine position
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseOver
)

// Outcome explains why a game ended
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSelfCollision
	OutcomeHazard
	OutcomeBoardFull
	OutcomeQuit
)

// String returns the short machine name used in logs
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSelfCollision:
		return "self-collision"
	case OutcomeHazard:
		return "hazard-contact"
	case OutcomeBoardFull:
		return "board-full"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Reason returns the user-visible game over line
func (o Outcome) Reason() string {
	switch o {
	case OutcomeSelfCollision:
		return "Game Over! You hit yourself!"
	case OutcomeHazard:
		return "Game Over! You ate poisonous food!"
	case OutcomeBoardFull:
		return "You filled the board!"
	case OutcomeQuit:
		return "Quit."
	default:
		return ""
	}
}

// Scored reports whether the outcome ends a game that belongs on the leaderboard
// A quit abandons the session the way the original quit key did
func (o Outcome) Scored() bool {
	return o == OutcomeSelfCollision || o == OutcomeHazard || o == OutcomeBoardFull
}

// StepKind classifies what a tick did
type StepKind uint8

const (
	StepMoved StepKind = iota
	StepAte
	StepEnded
)

// StepResult is returned by Game.Step
type StepResult struct {
	Kind    StepKind
	Head    core.Cell // candidate head evaluated this tick
	Outcome Outcome   // set when Kind is StepEnded
}

// Snapshot is the render-facing copy of game state, safe to hand to another goroutine
type Snapshot struct {
	Tick      uint64
	GridSize  int
	Body      []core.Cell // oldest first, head last
	Food      core.Cell
	Hazard    core.Cell
	HasHazard bool
	Score     int
	Length    int
	Interval  time.Duration
	Phase     Phase
	Outcome   Outcome
}

// Head returns the newest body cell
func (s Snapshot) Head() core.Cell {
	if len(s.Body) == 0 {
		return core.Cell{}
	}
	return s.Body[len(s.Body)-1]
}

// Result summarizes a finished session
type Result struct {
	Outcome  Outcome
	Score    int
	Length   int
	Ticks    uint64
	Interval time.Duration
}
