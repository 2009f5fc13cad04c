// Package core contains the fundamental types used throughout shapegrid.
package core

import "fmt"

// Point represents a 2D coordinate on a grid.
// No bounds are implied; whether a point fits a grid is checked by the caller.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MaxCoordinate bounds the coordinates that can be rasterized. Spans between
// points inside [-MaxCoordinate, MaxCoordinate] cannot overflow int, even on
// 32-bit platforms.
const MaxCoordinate = 1 << 28

// InRange reports whether both coordinates lie within ±MaxCoordinate.
func (p Point) InRange() bool {
	return p.X >= -MaxCoordinate && p.X <= MaxCoordinate &&
		p.Y >= -MaxCoordinate && p.Y <= MaxCoordinate
}

// Segment is an ordered pair of points. Rasterization treats it as directionless.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// IsPoint returns true if both endpoints coincide.
func (s Segment) IsPoint() bool {
	return s.Start == s.End
}

// Bounds represents a rectangular area. Min is inclusive, Max exclusive.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}
