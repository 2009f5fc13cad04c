package scene

import "shapegrid/core"

// Demo returns the sample composition: a long shallow line, a five-point
// closed polygon, a rectangle and a twenty-point n-gon that reads as a circle.
func Demo() *Scene {
	return &Scene{
		Width:  100,
		Height: 40,
		Fill:   DefaultFill,
		Shapes: []Shape{
			{Kind: KindLine, Points: []core.Point{{X: 10, Y: 4}, {X: 92, Y: 19}}, Char: "+"},
			{Kind: KindPolygon, Points: []core.Point{
				{X: 7, Y: 12}, {X: 24, Y: 29}, {X: 42, Y: 15}, {X: 37, Y: 32}, {X: 15, Y: 35},
			}},
			{Kind: KindRectangle, Points: []core.Point{{X: 45, Y: 2}, {X: 80, Y: 27}}, Char: "#"},
			{Kind: KindNGon, Center: core.Point{X: 72, Y: 25}, Radius: 12, Sides: 20, Rotation: 80, Char: "-"},
		},
	}
}
