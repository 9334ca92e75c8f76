package game

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/core"
)

// DirectionSource yields the latest requested heading, read once per tick
type DirectionSource interface {
	Load() core.Direction
}

// Sink consumes one snapshot per non-terminal tick
type Sink interface {
	Frame(s Snapshot)
}

// Listener observes gameplay events; calls happen on the session goroutine
type Listener interface {
	Ate(s Snapshot)
	Ended(r Result)
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithClock replaces the real timer, used by tests
func WithClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithListener attaches an event observer
func WithListener(l Listener) SessionOption {
	return func(s *Session) { s.listener = l }
}

// WithLogger attaches a logger; entries carry the caller's fields
func WithLogger(l *logrus.Entry) SessionOption {
	return func(s *Session) { s.log = l }
}

// Session drives one game: tick, render, sleep, until an outcome
type Session struct {
	game     *Game
	dir      DirectionSource
	sink     Sink
	clock    Clock
	listener Listener
	log      *logrus.Entry
}

// NewSession wires a game to its input and render collaborators
func NewSession(g *Game, dir DirectionSource, sink Sink, opts ...SessionOption) *Session {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Session{
		game:  g,
		dir:   dir,
		sink:  sink,
		clock: RealClock{},
		log:   logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the game ends or ctx is cancelled (reported as OutcomeQuit)
func (s *Session) Run(ctx context.Context) Result {
	g := s.game
	s.log.WithField("interval", g.Interval()).Info("session started")

	heading := StartDirection
	for {
		if ctx.Err() != nil {
			return s.finish()
		}

		// A source with nothing stored yet keeps the current heading
		if d := s.dir.Load(); d.Valid() {
			heading = d
		}
		res := g.Step(heading)

		switch res.Kind {
		case StepEnded:
			return s.finish()
		case StepAte:
			snap := g.Snapshot()
			s.log.WithFields(logrus.Fields{
				"tick":     snap.Tick,
				"score":    snap.Score,
				"length":   snap.Length,
				"interval": snap.Interval,
			}).Debug("food eaten")
			if s.listener != nil {
				s.listener.Ate(snap)
			}
			s.sink.Frame(snap)
		default:
			s.sink.Frame(g.Snapshot())
		}

		if err := s.clock.Sleep(ctx, g.Interval()); err != nil {
			return s.finish()
		}
	}
}

// finish closes the state machine and notifies the listener once
func (s *Session) finish() Result {
	s.game.Quit()
	r := s.game.Result()

	s.log.WithFields(logrus.Fields{
		"outcome": r.Outcome.String(),
		"score":   r.Score,
		"length":  r.Length,
		"ticks":   r.Ticks,
	}).Info("session ended")

	if s.listener != nil {
		s.listener.Ended(r)
	}
	return r
}
