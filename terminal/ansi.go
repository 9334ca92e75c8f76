package terminal

import "bufio"

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiHome  = []byte("\x1b[H")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	csiClearEOL = []byte("\x1b[K")
	csiClearEOS = []byte("\x1b[J")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// DECAWM: ?7l stops the terminal scrolling when the bottom-right cell is written
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeStyle emits one SGR sequence resetting then applying s
func writeStyle(w *bufio.Writer, s Style, mode ColorMode) {
	w.Write(csi)
	w.WriteByte('0')

	if s.Attrs&AttrBold != 0 {
		w.WriteString(";1")
	}
	if s.Attrs&AttrDim != 0 {
		w.WriteString(";2")
	}
	if s.Attrs&AttrItalic != 0 {
		w.WriteString(";3")
	}
	if s.Attrs&AttrUnderline != 0 {
		w.WriteString(";4")
	}
	if s.Attrs&AttrReverse != 0 {
		w.WriteString(";7")
	}
	if s.HasFg {
		w.WriteString(";38")
		writeColor(w, s.Fg, mode)
	}
	if s.HasBg {
		w.WriteString(";48")
		writeColor(w, s.Bg, mode)
	}
	w.WriteByte('m')
}

// writeColor writes ";2;R;G;B" or ";5;N" depending on mode
func writeColor(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.WriteString(";2;")
		writeInt(w, int(c.R))
		w.WriteByte(';')
		writeInt(w, int(c.G))
		w.WriteByte(';')
		writeInt(w, int(c.B))
		return
	}
	w.WriteString(";5;")
	writeInt(w, int(RGBTo256(c)))
}
