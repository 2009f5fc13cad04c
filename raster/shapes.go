package raster

import (
	"fmt"
	"math"

	"shapegrid/canvas"
	"shapegrid/core"
	"shapegrid/geometry"
)

// DrawLine draws the open two-point path from start to end.
func DrawLine(s canvas.Surface, start, end core.Point, ch rune) error {
	return DrawPolygon(s, []core.Point{start, end}, false, ch)
}

// RectanglePoints returns the corners of the axis-aligned rectangle spanned
// by upperLeft and lowerRight, in drawing order. Swapped corners still form
// a valid loop.
func RectanglePoints(upperLeft, lowerRight core.Point) []core.Point {
	x1, y1 := upperLeft.X, upperLeft.Y
	x2, y2 := lowerRight.X, lowerRight.Y
	return []core.Point{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x2, Y: y2},
		{X: x1, Y: y2},
	}
}

// DrawRectangle draws the outline of the rectangle spanned by two corners.
func DrawRectangle(s canvas.Surface, upperLeft, lowerRight core.Point, ch rune) error {
	return DrawPolygon(s, RectanglePoints(upperLeft, lowerRight), true, ch)
}

// MaxNGonPoints is the largest vertex count whose angular step,
// 360/n in whole degrees, is still non-zero.
const MaxNGonPoints = 360

// NGonPoints distributes n vertices on the circle around center. Vertex i
// sits at rotation + i*(360/n) degrees, with the step truncated to whole
// degrees. When n does not divide 360 the last vertex falls short of a full
// turn and the closing edge is longer than the others.
//
// Coordinates are rounded half to even, see geometry.Round.
func NGonPoints(center core.Point, radius, n, rotation int) ([]core.Point, error) {
	if n < 1 || n > MaxNGonPoints {
		return nil, fmt.Errorf("%w: n-gon with %d points, want 1..%d", ErrInvalidShape, n, MaxNGonPoints)
	}

	step := 360 / n
	points := make([]core.Point, 0, n)
	for i := 0; i < n; i++ {
		theta := geometry.Radians(rotation + i*step)
		x := float64(center.X) + float64(radius)*math.Cos(theta)
		y := float64(center.Y) + float64(radius)*math.Sin(theta)
		points = append(points, core.Point{X: geometry.Round(x), Y: geometry.Round(y)})
	}
	return points, nil
}

// DrawNGon draws a closed regular polygon with n vertices. A single vertex
// is drawn as a one-cell closed path.
func DrawNGon(s canvas.Surface, center core.Point, radius, n, rotation int, ch rune) error {
	points, err := NGonPoints(center, radius, n, rotation)
	if err != nil {
		return reject("ngon", err)
	}
	if len(points) == 1 {
		if err := checkChar(ch); err != nil {
			return reject("ngon", err)
		}
		if err := checkBounds(s, points[0]); err != nil {
			return reject("ngon", err)
		}
		return paint(s, core.Segment{Start: points[0], End: points[0]}, ch)
	}
	return DrawPolygon(s, points, true, ch)
}
