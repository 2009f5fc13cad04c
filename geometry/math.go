// Package geometry holds the small integer and rounding helpers shared by
// the rasterizer and the shape generators.
package geometry

import "math"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Step returns the unit step that moves from a towards b.
// It is +1 when a < b and -1 otherwise; callers never step when a == b.
func Step(a, b int) int {
	if a < b {
		return 1
	}
	return -1
}

// Round converts a float coordinate to the nearest grid cell, resolving
// exact halves to the even neighbour (2.5 -> 2, 3.5 -> 4, -0.5 -> 0).
func Round(f float64) int {
	return int(math.RoundToEven(f))
}

// Radians converts whole degrees to radians.
func Radians(degrees int) float64 {
	return float64(degrees) * (math.Pi / 180)
}

// Less orders points by x, then by y. The rasterizer uses it to pick a
// canonical starting endpoint.
func Less(x1, y1, x2, y2 int) bool {
	if x1 != x2 {
		return x1 < x2
	}
	return y1 < y2
}
