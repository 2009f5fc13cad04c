// Package canvas provides the fixed-size character grid that shapes are
// rasterized onto.
package canvas

import "shapegrid/core"

// Surface is a 2D character surface the rasterizer can paint on.
type Surface interface {
	// Size returns the width and height of the surface.
	Size() (width, height int)

	// Get returns the character at the given position.
	Get(p core.Point) rune

	// Set places a character at the given position.
	// Returns ErrOutOfBounds if the position is outside the surface.
	Set(p core.Point, char rune) error
}
