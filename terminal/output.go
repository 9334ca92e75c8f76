package terminal

import (
	"bufio"
	"io"
)

// frameWriter repaints whole frames from the home position
// Game frames are a few hundred cells, so full repaint beats diff bookkeeping
type frameWriter struct {
	w         *bufio.Writer
	colorMode ColorMode
}

func newFrameWriter(w io.Writer, colorMode ColorMode) *frameWriter {
	return &frameWriter{
		w:         bufio.NewWriterSize(w, 16384),
		colorMode: colorMode,
	}
}

// draw writes f row by row, clearing each row's tail and everything below the last row
func (o *frameWriter) draw(f Frame) error {
	w := o.w
	w.Write(csiHome)

	for i, line := range f.Lines {
		if i > 0 {
			// Raw mode: no implicit carriage return
			w.WriteString("\r\n")
		}
		for _, span := range line {
			if span.Style != StyleDefault {
				writeStyle(w, span.Style, o.colorMode)
				w.WriteString(span.Text)
				w.Write(csiSGR0)
				continue
			}
			w.WriteString(span.Text)
		}
		w.Write(csiClearEOL)
	}
	w.Write(csiClearEOS)

	return w.Flush()
}

// clear wipes the screen and homes the cursor
func (o *frameWriter) clear() error {
	o.w.Write(csiSGR0)
	o.w.Write(csiClear)
	return o.w.Flush()
}

// raw writes bytes through the same buffer to keep stream order
func (o *frameWriter) raw(p []byte) error {
	o.w.Write(p)
	return o.w.Flush()
}
