package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode maps a flag value; "auto" and "" detect from the environment
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBGray   = RGB{88, 88, 88}
	RGBGreen  = RGB{80, 200, 90}
	RGBLime   = RGB{170, 240, 110}
	RGBRed    = RGB{230, 60, 60}
	RGBPurple = RGB{170, 90, 220}
	RGBYellow = RGB{240, 210, 80}
)

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

func cubeIndex(v uint8) uint8 {
	best := uint8(0)
	bestDist := 256
	for j, cv := range cubeValues {
		if d := abs(int(v) - int(cv)); d < bestDist {
			bestDist = d
			best = uint8(j)
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index
// Near-gray colors compare the grayscale ramp (232-255) against the cube
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B
	cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cubeIdx := 16 + 36*cr + 6*cg + cb

	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 {
		return cubeIdx
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := 232 + (gray-8)/10
	if grayIdx > 255 {
		grayIdx = 255
	}
	if grayIdx < 232 {
		grayIdx = 232
	}
	level := 8 + (grayIdx-232)*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
	cubeDist := abs(int(r)-int(cubeValues[cr])) + abs(int(g)-int(cubeValues[cg])) + abs(int(b)-int(cubeValues[cb]))
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cubeIdx
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
