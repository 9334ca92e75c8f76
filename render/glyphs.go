// Package render turns game snapshots into terminal frames and formats the
// post-game summary printed once the terminal has been restored.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/terminal"
)

// CellWidth is the number of terminal columns per grid cell
// Emoji glyphs are two columns wide; ASCII glyphs are padded to match
const CellWidth = 2

// GlyphSet names the glyph drawn for each cell kind
type GlyphSet struct {
	Name   string
	Head   string
	Body   string
	Food   string
	Hazard string
	Empty  string
}

var (
	GlyphsEmoji = GlyphSet{
		Name:   "emoji",
		Head:   "🐍",
		Body:   "🐍",
		Food:   "🍎",
		Hazard: "🍄",
		Empty:  "⬜",
	}

	GlyphsASCII = GlyphSet{
		Name:   "ascii",
		Head:   "@",
		Body:   "o",
		Food:   "*",
		Hazard: "x",
		Empty:  ".",
	}
)

// ParseGlyphs resolves a glyph set by name
func ParseGlyphs(name string) (GlyphSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "emoji":
		return GlyphsEmoji, nil
	case "ascii":
		return GlyphsASCII, nil
	}
	return GlyphSet{}, fmt.Errorf("unknown glyph set %q (want emoji or ascii)", name)
}

// cellKind indexes glyphs and styles
type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindBody
	kindHead
	kindFood
	kindHazard
)

// padded returns each glyph filled to CellWidth columns
func (g GlyphSet) padded() [5]string {
	var out [5]string
	for k, s := range [5]string{g.Empty, g.Body, g.Head, g.Food, g.Hazard} {
		out[k] = runewidth.FillRight(s, CellWidth)
	}
	return out
}

// Cell styles; emoji carry their own color so only ASCII visibly changes
var kindStyles = [5]terminal.Style{
	kindEmpty:  terminal.StyleDefault.Foreground(terminal.RGBGray),
	kindBody:   terminal.StyleDefault.Foreground(terminal.RGBGreen),
	kindHead:   terminal.StyleDefault.Foreground(terminal.RGBLime).With(terminal.AttrBold),
	kindFood:   terminal.StyleDefault.Foreground(terminal.RGBRed).With(terminal.AttrBold),
	kindHazard: terminal.StyleDefault.Foreground(terminal.RGBPurple),
}
