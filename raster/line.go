// Package raster converts lines, polygons, rectangles and regular n-gons
// into grid cells with integer-only Bresenham stepping.
//
// Every drawing call checks its paint character and all of its vertices
// before touching the surface. A call that returns an error leaves the
// surface unchanged.
package raster

import (
	"slices"

	"shapegrid/canvas"
	"shapegrid/core"
	"shapegrid/geometry"
)

// DefaultChar is the paint character used when a caller has no preference.
const DefaultChar = '*'

// Line returns the cells on the straight path between start and end, both
// inclusive, ordered from start to end. Swapping the endpoints yields the
// same cells in reverse order.
//
// Both endpoints must lie within ±core.MaxCoordinate; Line returns nil
// otherwise.
func Line(start, end core.Point) []core.Point {
	if !start.InRange() || !end.InRange() {
		return nil
	}
	return segmentCells(core.Segment{Start: start, End: end})
}

// segmentCells rasterizes seg from its canonical endpoint, the one that
// sorts first by x then y, so both directions share the same cells.
func segmentCells(seg core.Segment) []core.Point {
	if seg.IsPoint() {
		return []core.Point{seg.Start}
	}
	if geometry.Less(seg.End.X, seg.End.Y, seg.Start.X, seg.Start.Y) {
		cells := bresenham(seg.Reversed())
		slices.Reverse(cells)
		return cells
	}
	return bresenham(seg)
}

// bresenham steps from one endpoint to the other using the all-octant
// error term: err = dx - dy; x advances while 2*err > -dy, y while 2*err < dx.
func bresenham(seg core.Segment) []core.Point {
	from, to := seg.Start, seg.End
	dx := geometry.Abs(to.X - from.X)
	dy := geometry.Abs(to.Y - from.Y)
	sx := geometry.Step(from.X, to.X)
	sy := geometry.Step(from.Y, to.Y)
	err := dx - dy

	cells := make([]core.Point, 0, max(dx, dy)+1)
	x, y := from.X, from.Y
	for x != to.X || y != to.Y {
		cells = append(cells, core.Point{X: x, Y: y})

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}

	// The loop stops on the endpoint without painting it.
	return append(cells, to)
}

// DrawSegment paints every cell between start and end with ch, overwriting
// whatever was there.
func DrawSegment(s canvas.Surface, start, end core.Point, ch rune) error {
	if err := checkChar(ch); err != nil {
		return reject("segment", err)
	}
	if err := checkBounds(s, start, end); err != nil {
		return reject("segment", err)
	}
	return paint(s, core.Segment{Start: start, End: end}, ch)
}

// paint writes one segment whose endpoints are already known to be on s.
func paint(s canvas.Surface, seg core.Segment, ch rune) error {
	cells := segmentCells(seg)
	Logger().Debug("raster: segment", "start", seg.Start, "end", seg.End, "cells", len(cells))
	for _, c := range cells {
		if err := s.Set(c, ch); err != nil {
			return err
		}
	}
	return nil
}
