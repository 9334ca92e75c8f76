package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A); H, I, J and M arrive as Backspace, Tab and Enter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// csiFinal maps the final byte of an ESC [ sequence to a navigation key
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiTilde maps ESC [ N ~ sequences
var csiTilde = map[int]Key{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// xtermModifier decodes the xterm modifier parameter (ESC [ 1 ; mod X)
func xtermModifier(p int) Modifier {
	if p < 2 {
		return ModNone
	}
	bits := p - 1
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// ctrlKeys maps control bytes to keys, indexed by byte value
var ctrlKeys = [0x20]Key{
	0x01: KeyCtrlA, 0x02: KeyCtrlB, 0x03: KeyCtrlC, 0x04: KeyCtrlD,
	0x05: KeyCtrlE, 0x06: KeyCtrlF, 0x07: KeyCtrlG, 0x08: KeyBackspace,
	0x09: KeyTab, 0x0a: KeyEnter, 0x0b: KeyCtrlK, 0x0c: KeyCtrlL,
	0x0d: KeyEnter, 0x0e: KeyCtrlN, 0x0f: KeyCtrlO, 0x10: KeyCtrlP,
	0x11: KeyCtrlQ, 0x12: KeyCtrlR, 0x13: KeyCtrlS, 0x14: KeyCtrlT,
	0x15: KeyCtrlU, 0x16: KeyCtrlV, 0x17: KeyCtrlW, 0x18: KeyCtrlX,
	0x19: KeyCtrlY, 0x1a: KeyCtrlZ, 0x1b: KeyEscape,
}

// keyNames maps Key constants to canonical config string names
var keyNames = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyCtrlA:     "ctrl_a",
	KeyCtrlB:     "ctrl_b",
	KeyCtrlC:     "ctrl_c",
	KeyCtrlD:     "ctrl_d",
	KeyCtrlE:     "ctrl_e",
	KeyCtrlF:     "ctrl_f",
	KeyCtrlG:     "ctrl_g",
	KeyCtrlK:     "ctrl_k",
	KeyCtrlL:     "ctrl_l",
	KeyCtrlN:     "ctrl_n",
	KeyCtrlO:     "ctrl_o",
	KeyCtrlP:     "ctrl_p",
	KeyCtrlQ:     "ctrl_q",
	KeyCtrlR:     "ctrl_r",
	KeyCtrlS:     "ctrl_s",
	KeyCtrlT:     "ctrl_t",
	KeyCtrlU:     "ctrl_u",
	KeyCtrlV:     "ctrl_v",
	KeyCtrlW:     "ctrl_w",
	KeyCtrlX:     "ctrl_x",
	KeyCtrlY:     "ctrl_y",
	KeyCtrlZ:     "ctrl_z",
}

var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, n := range keyNames {
		m[n] = k
	}
	m["esc"] = KeyEscape
	return m
}()

// KeyByName resolves a config name such as "up" or "ctrl_c"
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// String returns the config name, or "" for KeyNone/KeyRune
func (k Key) String() string {
	return keyNames[k]
}
