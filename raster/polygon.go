package raster

import (
	"fmt"

	"shapegrid/canvas"
	"shapegrid/core"
)

// Segments splits an ordered point sequence into the segments to draw:
// each point joined to its successor, plus last-to-first when closed.
// An open path of n points has n-1 segments, a closed one n.
func Segments(points []core.Point, closed bool) ([]core.Segment, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPolygon, len(points))
	}

	n := len(points)
	segments := make([]core.Segment, 0, n)
	for i := 0; i < n-1; i++ {
		segments = append(segments, core.Segment{Start: points[i], End: points[i+1]})
	}
	if closed {
		segments = append(segments, core.Segment{Start: points[n-1], End: points[0]})
	}
	return segments, nil
}

// DrawPolygon draws the segments of points in input order. Later segments
// overwrite earlier ones where they share cells.
func DrawPolygon(s canvas.Surface, points []core.Point, closed bool, ch rune) error {
	segments, err := Segments(points, closed)
	if err != nil {
		return reject("polygon", err)
	}
	if err := checkChar(ch); err != nil {
		return reject("polygon", err)
	}
	if err := checkBounds(s, points...); err != nil {
		return reject("polygon", err)
	}

	Logger().Debug("raster: polygon", "points", len(points), "closed", closed, "segments", len(segments))
	for _, seg := range segments {
		if err := paint(s, seg, ch); err != nil {
			return err
		}
	}
	return nil
}
