package input

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/terminal"
)

// EventSource is the blocking half of terminal.Terminal
type EventSource interface {
	PollEvent() terminal.Event
}

// Dispatcher reads terminal events, publishes directions and signals quit
type Dispatcher struct {
	src    EventSource
	keys   *KeyTable
	slot   *DirectionSlot
	cancel context.CancelFunc
	log    *logrus.Entry
}

// NewDispatcher wires an event source to the slot; cancel is called once on a quit key
// A nil logger discards output
func NewDispatcher(src EventSource, keys *KeyTable, slot *DirectionSlot, cancel context.CancelFunc, log *logrus.Entry) *Dispatcher {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Dispatcher{
		src:    src,
		keys:   keys,
		slot:   slot,
		cancel: cancel,
		log:    log,
	}
}

// Run blocks until the source reports EventClosed or a read error
// A quit key cancels the game but keeps draining so the terminal never backs up
func (d *Dispatcher) Run() {
	for {
		ev := d.src.PollEvent()

		switch ev.Type {
		case terminal.EventClosed:
			return
		case terminal.EventError:
			d.log.WithError(ev.Err).Warn("input error, quitting")
			d.cancel()
			return
		case terminal.EventResize:
			// Next frame repaints from the top-left; nothing to do
			continue
		}

		intent := d.keys.Resolve(ev)
		switch intent.Type {
		case IntentMove:
			d.slot.Store(intent.Direction)
			d.log.WithField("direction", intent.Direction.String()).Debug("direction")
		case IntentQuit:
			d.log.Debug("quit requested")
			d.cancel()
		}
	}
}
