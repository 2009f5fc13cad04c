package canvas

import (
	"fmt"
	"strings"
	"testing"

	"shapegrid/core"
)

// TestValidator provides validation utilities for grid tests.
type TestValidator struct {
	t testing.TB
}

// NewTestValidator creates a validator for grid tests.
func NewTestValidator(t testing.TB) *TestValidator {
	return &TestValidator{t: t}
}

// AssertCanvasEquals checks if the grid output matches the expected picture.
// Leading and trailing newlines of expected are ignored so pictures can be
// written as raw string literals starting on their own line.
func (v *TestValidator) AssertCanvasEquals(grid fmt.Stringer, expected string) {
	v.t.Helper()
	actual := grid.String()
	expected = strings.Trim(expected, "\n")

	if actual != expected {
		v.t.Errorf("Grid output mismatch:\nExpected:\n%s\n\nActual:\n%s", expected, actual)

		expectedLines := strings.Split(expected, "\n")
		actualLines := strings.Split(actual, "\n")

		for i := 0; i < len(expectedLines) || i < len(actualLines); i++ {
			if i >= len(expectedLines) {
				v.t.Errorf("Extra line %d: %q", i+1, actualLines[i])
			} else if i >= len(actualLines) {
				v.t.Errorf("Missing line %d: %q", i+1, expectedLines[i])
			} else if expectedLines[i] != actualLines[i] {
				v.t.Errorf("Line %d differs:\n  Expected: %q\n  Actual:   %q", i+1, expectedLines[i], actualLines[i])
			}
		}
	}
}

// AssertCharAt verifies a character at a specific position.
func (v *TestValidator) AssertCharAt(s Surface, p core.Point, expected rune) {
	v.t.Helper()
	actual := s.Get(p)
	if actual != expected {
		v.t.Errorf("Character at (%d,%d): expected %c, got %c", p.X, p.Y, expected, actual)
	}
}

// AssertPainted verifies that exactly the given cells differ from fill.
func (v *TestValidator) AssertPainted(s Surface, fill rune, want []core.Point) {
	v.t.Helper()
	wantSet := make(map[core.Point]bool, len(want))
	for _, p := range want {
		wantSet[p] = true
	}

	got := Painted(s, fill)
	gotSet := make(map[core.Point]bool, len(got))
	for _, p := range got {
		gotSet[p] = true
		if !wantSet[p] {
			v.t.Errorf("Unexpected painted cell %v (%c)", p, s.Get(p))
		}
	}
	for _, p := range want {
		if !gotSet[p] {
			v.t.Errorf("Cell %v was not painted", p)
		}
	}
}

// AssertConnected checks that consecutive cells of path are 8-neighbours.
func (v *TestValidator) AssertConnected(path []core.Point) {
	v.t.Helper()
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			v.t.Errorf("Gap between %v and %v at step %d", path[i-1], path[i], i)
		}
	}
}

// Painted returns every cell of s that no longer holds fill, in row-major order.
func Painted(s Surface, fill rune) []core.Point {
	width, height := s.Size()
	var cells []core.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			if s.Get(p) != fill {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
