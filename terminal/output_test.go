package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestFrameWriter_PlainFrame(t *testing.T) {
	var buf bytes.Buffer
	w := newFrameWriter(&buf, ColorModeTrueColor)

	var f Frame
	f.AddLine(Span{Text: "Score: 10"})
	f.AddLine(Span{Text: "..."})
	if err := w.draw(f); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[HScore: 10\x1b[K\r\n...\x1b[K\x1b[J"
	if got := buf.String(); got != want {
		t.Errorf("draw = %q, want %q", got, want)
	}
}

func TestFrameWriter_StyledSpan(t *testing.T) {
	var buf bytes.Buffer
	w := newFrameWriter(&buf, ColorModeTrueColor)

	var f Frame
	f.AddLine(Span{Text: "@", Style: StyleDefault.Foreground(RGB{1, 2, 3}).With(AttrBold)})
	w.draw(f)

	if !strings.Contains(buf.String(), "\x1b[0;1;38;2;1;2;3m@\x1b[0m") {
		t.Errorf("truecolor span missing: %q", buf.String())
	}
}

func TestFrameWriter_256Color(t *testing.T) {
	var buf bytes.Buffer
	w := newFrameWriter(&buf, ColorMode256)

	var f Frame
	f.AddLine(Span{Text: "#", Style: StyleDefault.Background(RGBBlack)})
	w.draw(f)

	if !strings.Contains(buf.String(), "\x1b[0;48;5;16m#") {
		t.Errorf("256 span missing: %q", buf.String())
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		in   RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 16},
		{RGB{255, 255, 255}, 231},
		{RGB{255, 0, 0}, 196},
		{RGB{0, 255, 0}, 46},
		{RGB{0, 0, 255}, 21},
		{RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.in); got != tt.want {
			t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFrameText(t *testing.T) {
	var f Frame
	f.AddLine(Span{Text: "ab"}, Span{Text: "c"})
	f.AddLine()
	f.AddLine(Span{Text: "d"})
	if got := f.Text(); got != "abc\n\nd" {
		t.Errorf("Text() = %q", got)
	}
}
