package render

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Drawer is the output half of terminal.Terminal
type Drawer interface {
	Draw(f terminal.Frame)
}

// Renderer implements game.Sink by drawing each snapshot to a terminal
type Renderer struct {
	out    Drawer
	glyphs [5]string
}

// NewRenderer creates a renderer drawing with gs
func NewRenderer(out Drawer, gs GlyphSet) *Renderer {
	return &Renderer{out: out, glyphs: gs.padded()}
}

// Frame renders one tick
func (r *Renderer) Frame(s game.Snapshot) {
	r.out.Draw(buildFrame(s, r.glyphs))
}

// BuildFrame renders a snapshot without drawing it
func BuildFrame(s game.Snapshot, gs GlyphSet) terminal.Frame {
	return buildFrame(s, gs.padded())
}

func buildFrame(s game.Snapshot, glyphs [5]string) terminal.Frame {
	n := s.GridSize
	kinds := make([]cellKind, n*n)
	grid := core.Grid{Size: n}

	mark := func(c core.Cell, k cellKind) {
		if grid.Contains(c) {
			kinds[grid.Index(c)] = k
		}
	}
	for _, c := range s.Body {
		mark(c, kindBody)
	}
	if len(s.Body) > 0 {
		mark(s.Head(), kindHead)
	}
	mark(s.Food, kindFood)
	if s.HasHazard {
		mark(s.Hazard, kindHazard)
	}

	var f terminal.Frame
	f.Lines = make([]terminal.Line, 0, n+3)

	var sb strings.Builder
	for row := 0; row < n; row++ {
		var line terminal.Line
		// Adjacent cells of one kind share a span
		for col := 0; col < n; {
			k := kinds[row*n+col]
			sb.Reset()
			for col < n && kinds[row*n+col] == k {
				sb.WriteString(glyphs[k])
				col++
			}
			line = append(line, terminal.Span{Text: sb.String(), Style: kindStyles[k]})
		}
		f.Lines = append(f.Lines, line)
	}

	f.AddLine(hud("Score: ", strconv.Itoa(s.Score))...)
	f.AddLine(hud("Length: ", strconv.Itoa(s.Length))...)
	f.AddLine(hud("Speed: ", strconv.FormatInt(s.Interval.Milliseconds(), 10)+"ms")...)
	return f
}

var (
	hudLabel = terminal.StyleDefault.Foreground(terminal.RGBGray)
	hudValue = terminal.StyleDefault.Foreground(terminal.RGBYellow).With(terminal.AttrBold)
)

func hud(label, value string) []terminal.Span {
	return []terminal.Span{
		{Text: label, Style: hudLabel},
		{Text: value, Style: hudValue},
	}
}
