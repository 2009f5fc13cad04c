package raster

import (
	"errors"
	"fmt"

	"shapegrid/canvas"
	"shapegrid/core"
)

// Errors returned by the drawing operations. Bounds and character problems
// are reported with the canvas sentinels canvas.ErrOutOfBounds and
// canvas.ErrInvalidChar.
var (
	ErrInvalidPolygon = errors.New("polygon needs at least 2 points")
	ErrInvalidShape   = errors.New("invalid shape parameters")
)

// checkChar rejects paint characters that cannot fill exactly one cell.
func checkChar(ch rune) error {
	if !canvas.ValidChar(ch) {
		return fmt.Errorf("%w: %q", canvas.ErrInvalidChar, ch)
	}
	return nil
}

// checkBounds rejects the draw if any vertex lies outside s. Every cell of
// a rasterized segment lies inside the bounding box of its endpoints, so
// checking vertices covers every cell that would be painted.
func checkBounds(s canvas.Surface, points ...core.Point) error {
	width, height := s.Size()
	b := core.Bounds{Max: core.Point{X: width, Y: height}}
	for _, p := range points {
		if !b.Contains(p) {
			return fmt.Errorf("%w: %v on %dx%d surface", canvas.ErrOutOfBounds, p, b.Width(), b.Height())
		}
	}
	return nil
}

// reject logs a refused drawing call and passes the error through.
func reject(op string, err error) error {
	Logger().Warn("raster: draw rejected", "op", op, "err", err)
	return err
}
