package canvas

import (
	"errors"
	"fmt"
	"strings"

	"shapegrid/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid grid size")
	ErrInvalidChar = errors.New("invalid paint character")
)

// Grid is a mutable character surface of fixed width and height.
//
// Thread Safety:
// Grid is NOT thread-safe for writes. Set, Clear and every raster drawing
// call must be synchronized externally if the grid is shared between
// goroutines. Reads (Get, Size, Rows, String) are safe as long as no write
// is in progress.
//
// Storage:
//   - Cells live in one flat buffer indexed by y*width + x
//   - Every row has exactly width cells for the lifetime of the grid
//   - The grid is never resized
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//
// Performance Characteristics:
//   - Set/Get: O(1)
//   - Rows/String/Clear: O(width × height)
type Grid struct {
	cells  []rune
	width  int
	height int
	fill   rune
}

// New creates a grid of the given size with every cell set to fill.
func New(width, height int, fill rune) (*Grid, error) {
	if width <= 0 || height <= 0 || width > core.MaxCoordinate || height > core.MaxCoordinate {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !ValidChar(fill) {
		return nil, fmt.Errorf("%w: fill %q", ErrInvalidChar, fill)
	}

	g := &Grid{
		cells:  make([]rune, width*height),
		width:  width,
		height: height,
		fill:   fill,
	}
	g.Clear()
	return g, nil
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Bounds returns the grid area as [0,width) × [0,height).
func (g *Grid) Bounds() core.Bounds {
	return core.Bounds{Max: core.Point{X: g.width, Y: g.height}}
}

// Contains reports whether p addresses a cell of the grid.
func (g *Grid) Contains(p core.Point) bool {
	return g.Bounds().Contains(p)
}

// Fill returns the character the grid was created with.
func (g *Grid) Fill() rune {
	return g.fill
}

// Get returns the character at the given position.
// Returns the fill character if position is out of bounds.
func (g *Grid) Get(p core.Point) rune {
	if !g.Contains(p) {
		return g.fill
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set places a character at the given position, overwriting what was there.
// Returns ErrOutOfBounds if position is outside the grid.
func (g *Grid) Set(p core.Point, char rune) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	g.cells[p.Y*g.width+p.X] = char
	return nil
}

// Clear resets every cell to the fill character.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.fill
	}
}

// Row returns row y as a string. It panics if y is out of range.
func (g *Grid) Row(y int) string {
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// Rows returns a copy of every row, top to bottom.
func (g *Grid) Rows() [][]rune {
	rows := make([][]rune, g.height)
	for y := range rows {
		row := make([]rune, g.width)
		copy(row, g.cells[y*g.width:(y+1)*g.width])
		rows[y] = row
	}
	return rows
}

// String returns the grid as rows joined by newlines, without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))

	for y := 0; y < g.height; y++ {
		for _, r := range g.cells[y*g.width : (y+1)*g.width] {
			sb.WriteRune(r)
		}
		if y < g.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}
