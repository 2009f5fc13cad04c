package raster

import (
	"errors"
	"testing"

	"shapegrid/canvas"
	"shapegrid/core"
)

func TestSegments(t *testing.T) {
	points := []core.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}, {X: 2, Y: 5}}

	tests := []struct {
		name   string
		points []core.Point
		closed bool
		want   int
	}{
		{"Open two points", points[:2], false, 1},
		{"Closed two points", points[:2], true, 2},
		{"Open five points", points, false, 4},
		{"Closed five points", points, true, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, err := Segments(tt.points, tt.closed)
			if err != nil {
				t.Fatalf("Segments() error = %v", err)
			}
			if len(segs) != tt.want {
				t.Fatalf("Segments() returned %d segments, want %d", len(segs), tt.want)
			}
			for i := 0; i < len(tt.points)-1; i++ {
				if segs[i].Start != tt.points[i] || segs[i].End != tt.points[i+1] {
					t.Errorf("segment %d = %+v, want %v -> %v", i, segs[i], tt.points[i], tt.points[i+1])
				}
			}
			if tt.closed {
				last := segs[len(segs)-1]
				if last.Start != tt.points[len(tt.points)-1] || last.End != tt.points[0] {
					t.Errorf("closing segment = %+v, want last -> first", last)
				}
			}
		})
	}
}

func TestSegments_TooFewPoints(t *testing.T) {
	for _, pts := range [][]core.Point{nil, {{X: 1, Y: 1}}} {
		for _, closed := range []bool{false, true} {
			if _, err := Segments(pts, closed); !errors.Is(err, ErrInvalidPolygon) {
				t.Errorf("Segments(%v, %v) error = %v, want ErrInvalidPolygon", pts, closed, err)
			}
		}
	}
}

func TestDrawPolygon(t *testing.T) {
	v := canvas.NewTestValidator(t)
	triangle := []core.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 3, Y: 4}}

	t.Run("Open", func(t *testing.T) {
		g := newGrid(t, 7, 5, '.')
		if err := DrawPolygon(g, triangle, false, '*'); err != nil {
			t.Fatalf("DrawPolygon() error = %v", err)
		}
		v.AssertCanvasEquals(g, `
*******
.....*.
....*..
....*..
...*...`)
	})

	t.Run("Closed", func(t *testing.T) {
		g := newGrid(t, 7, 5, '.')
		if err := DrawPolygon(g, triangle, true, '*'); err != nil {
			t.Fatalf("DrawPolygon() error = %v", err)
		}
		v.AssertCanvasEquals(g, `
*******
.*...*.
.*..*..
..*.*..
...*...`)
	})
}

func TestDrawPolygon_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		points []core.Point
		ch     rune
		want   error
	}{
		{"Single point", []core.Point{{X: 1, Y: 1}}, '*', ErrInvalidPolygon},
		{"Empty", nil, '*', ErrInvalidPolygon},
		{"Last vertex outside", []core.Point{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 9, Y: 3}}, '*', canvas.ErrOutOfBounds},
		{"First vertex outside", []core.Point{{X: -1, Y: 0}, {X: 3, Y: 3}, {X: 4, Y: 4}}, '*', canvas.ErrOutOfBounds},
		{"Bad char", []core.Point{{X: 0, Y: 0}, {X: 3, Y: 3}}, '\t', canvas.ErrInvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(t, 5, 5, '.')
			err := DrawPolygon(g, tt.points, true, tt.ch)
			if !errors.Is(err, tt.want) {
				t.Fatalf("DrawPolygon() error = %v, want %v", err, tt.want)
			}
			// No segment may be drawn before a later vertex is rejected.
			if cells := canvas.Painted(g, '.'); len(cells) != 0 {
				t.Errorf("rejected polygon painted %v", cells)
			}
		})
	}
}

func TestDrawPolygon_LaterShapesOverwrite(t *testing.T) {
	g := newGrid(t, 5, 5, '.')
	if err := DrawLine(g, core.Point{X: 0, Y: 2}, core.Point{X: 4, Y: 2}, '*'); err != nil {
		t.Fatal(err)
	}
	if err := DrawPolygon(g, []core.Point{{X: 2, Y: 0}, {X: 2, Y: 4}}, false, '|'); err != nil {
		t.Fatal(err)
	}

	canvas.NewTestValidator(t).AssertCanvasEquals(g, `
..|..
..|..
**|**
..|..
..|..`)
}
