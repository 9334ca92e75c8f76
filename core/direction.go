package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four grid headings
// Zero value is invalid so an unset Direction never moves silently
type Direction uint8

const (
	DirRight Direction = iota + 1
	DirLeft
	DirUp
	DirDown
)

// Directions lists every valid heading in declaration order
var Directions = [4]Direction{DirRight, DirLeft, DirUp, DirDown}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirDown
}

// String returns the lowercase name used in key configuration
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	panic(fmt.Errorf("core: opposite of invalid %v", d))
}

// ParseDirection resolves a configuration name, or its first letter, to a Direction
func ParseDirection(name string) (Direction, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for _, d := range Directions {
		if n := d.String(); name == n || name == n[:1] {
			return d, true
		}
	}
	return 0, false
}
