package raycast

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// DefaultWallColor is the color given to walls built with WallFromPoints.
var DefaultWallColor = color.NRGBA(colornames.White)

// NewWall creates a wall between p0 and p1 with the given color
func NewWall(p0, p1 Point, c color.NRGBA) Wall {
	return Wall{P0: p0, P1: p1, Color: c}
}

// WallFromPoints creates an opaque white wall between p0 and p1
func WallFromPoints(p0, p1 Point) Wall {
	return NewWall(p0, p1, DefaultWallColor)
}

// Length returns the distance between the wall's endpoints
func (w Wall) Length() float64 {
	return Distance(w.P0, w.P1)
}

// Degenerate reports whether the wall has zero length and therefore no orientation.
func (w Wall) Degenerate() bool {
	return w.P0 == w.P1
}

// Rejects reports whether a point taken from the wall's infinite line falls outside
// the finite segment: either behind P0 (the vector from P0 to the point is within
// tolerance radians of pointing away from P1) or farther from P0 than P1 is.
// Degenerate walls reject every point.
func (w Wall) Rejects(point Point, tolerance float64) bool {
	if w.Degenerate() {
		return true
	}

	dir1 := w.P0.Sub(w.P1)
	dir2 := w.P0.Sub(point)

	behind := math.Abs(math.Abs(dir1.AngleBetween(dir2))-math.Pi) <= tolerance
	return behind || dir1.Length() < dir2.Length()
}

// Bounce returns the direction of an elastic bounce off the wall.
// dir must be normalized. A degenerate wall leaves dir unchanged.
func (w Wall) Bounce(dir Point) Point {
	if w.Degenerate() {
		return dir
	}

	normal := w.P0.Sub(w.P1).Perp().Normalize()
	projection := normal.Scale(dir.Dot(normal))

	return dir.Sub(projection.Scale(2))
}
