package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tcellTerminal implements Terminal on a tcell.Screen
// Portable fallback for platforms or terminals the ANSI backend does not handle
type tcellTerminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// newTcellTerminal wraps screen; nil opens the real console
func newTcellTerminal(screen tcell.Screen) (*tcellTerminal, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		screen = s
	}
	return &tcellTerminal{screen: screen}, nil
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) Draw(f Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.screen.Clear()
	for y, line := range f.Lines {
		x := 0
		for _, span := range line {
			st := toTcellStyle(span.Style)
			for _, r := range span.Text {
				w := runewidth.RuneWidth(r)
				if w == 0 {
					continue
				}
				t.screen.SetContent(x, y, r, nil, st)
				x += w
			}
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return Event{Type: EventClosed}
		case *tcell.EventInterrupt:
			if e, ok := ev.Data().(Event); ok {
				return e
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventKey:
			if e, ok := fromTcellKey(ev); ok {
				return e
			}
		case *tcell.EventError:
			return Event{Type: EventError, Err: ev}
		}
	}
}

func (t *tcellTerminal) PostEvent(ev Event) {
	// Error means the queue is full or the screen is gone, both safe to drop
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(ev))
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyCtrlA:      KeyCtrlA,
	tcell.KeyCtrlB:      KeyCtrlB,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlD:      KeyCtrlD,
	tcell.KeyCtrlE:      KeyCtrlE,
	tcell.KeyCtrlF:      KeyCtrlF,
	tcell.KeyCtrlG:      KeyCtrlG,
	tcell.KeyCtrlK:      KeyCtrlK,
	tcell.KeyCtrlL:      KeyCtrlL,
	tcell.KeyCtrlN:      KeyCtrlN,
	tcell.KeyCtrlO:      KeyCtrlO,
	tcell.KeyCtrlP:      KeyCtrlP,
	tcell.KeyCtrlQ:      KeyCtrlQ,
	tcell.KeyCtrlR:      KeyCtrlR,
	tcell.KeyCtrlS:      KeyCtrlS,
	tcell.KeyCtrlT:      KeyCtrlT,
	tcell.KeyCtrlU:      KeyCtrlU,
	tcell.KeyCtrlV:      KeyCtrlV,
	tcell.KeyCtrlW:      KeyCtrlW,
	tcell.KeyCtrlX:      KeyCtrlX,
	tcell.KeyCtrlY:      KeyCtrlY,
	tcell.KeyCtrlZ:      KeyCtrlZ,
}

func fromTcellKey(ev *tcell.EventKey) (Event, bool) {
	var mods Modifier
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	if ev.Key() == tcell.KeyRune {
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Modifiers: mods}, true
	}
	k, ok := tcellKeys[ev.Key()]
	if !ok {
		return Event{}, false
	}
	return Event{Type: EventKey, Key: k, Modifiers: mods}, true
}

func toTcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault
	if s.HasFg {
		st = st.Foreground(tcell.NewRGBColor(int32(s.Fg.R), int32(s.Fg.G), int32(s.Fg.B)))
	}
	if s.HasBg {
		st = st.Background(tcell.NewRGBColor(int32(s.Bg.R), int32(s.Bg.G), int32(s.Bg.B)))
	}
	if s.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if s.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
