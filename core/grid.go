// Package core holds the grid primitives shared by the game, renderer and input layers,
// plus the crash handler used by every goroutine that may run while the terminal is raw.
package core

import "fmt"

// Cell is a grid coordinate, row-major
type Cell struct {
	Row, Col int
}

// String formats the cell as (row,col)
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a square board of side Size whose edges wrap around
type Grid struct {
	Size int
}

// NewGrid returns a grid of the given side
// Panics on non-positive size, a configuration error caught by config validation
func NewGrid(size int) Grid {
	if size <= 0 {
		panic(fmt.Errorf("core: grid size must be positive, got %d", size))
	}
	return Grid{Size: size}
}

// Area returns the number of cells on the grid
func (g Grid) Area() int {
	return g.Size * g.Size
}

// Contains reports whether c lies within [0, Size) on both axes
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Size && c.Col >= 0 && c.Col < g.Size
}

// NextHead returns the cell one step from cur in direction d, wrapping at the edges
func (g Grid) NextHead(cur Cell, d Direction) Cell {
	n := g.Size
	switch d {
	case DirRight:
		return Cell{Row: cur.Row, Col: (cur.Col + 1) % n}
	case DirLeft:
		return Cell{Row: cur.Row, Col: (cur.Col - 1 + n) % n}
	case DirUp:
		return Cell{Row: (cur.Row - 1 + n) % n, Col: cur.Col}
	case DirDown:
		return Cell{Row: (cur.Row + 1) % n, Col: cur.Col}
	}
	panic(fmt.Errorf("core: next head with invalid %v", d))
}

// Index maps a cell to its row-major offset
func (g Grid) Index(c Cell) int {
	return c.Row*g.Size + c.Col
}

// At maps a row-major offset back to a cell
func (g Grid) At(i int) Cell {
	return Cell{Row: i / g.Size, Col: i % g.Size}
}
