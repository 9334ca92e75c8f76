package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 4
)

// Style is a foreground/background pair plus attributes
// Unset colors fall through to the terminal defaults
type Style struct {
	Fg    RGB
	Bg    RGB
	HasFg bool
	HasBg bool
	Attrs Attr
}

// StyleDefault uses the terminal's own colors
var StyleDefault = Style{}

// Foreground returns a copy with fg set
func (s Style) Foreground(c RGB) Style {
	s.Fg = c
	s.HasFg = true
	return s
}

// Background returns a copy with bg set
func (s Style) Background(c RGB) Style {
	s.Bg = c
	s.HasBg = true
	return s
}

// With returns a copy with attrs added
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Span is a run of text in one style
type Span struct {
	Text  string
	Style Style
}

// Line is one screen row
type Line []Span

// Frame is a full screen image, rows top to bottom
type Frame struct {
	Lines []Line
}

// AddLine appends a row built from spans
func (f *Frame) AddLine(spans ...Span) {
	f.Lines = append(f.Lines, Line(spans))
}

// Text returns the frame without styling, rows joined by '\n'
func (f Frame) Text() string {
	n := 0
	for _, l := range f.Lines {
		for _, s := range l {
			n += len(s.Text)
		}
		n++
	}
	buf := make([]byte, 0, n)
	for i, l := range f.Lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		for _, s := range l {
			buf = append(buf, s.Text...)
		}
	}
	return string(buf)
}
