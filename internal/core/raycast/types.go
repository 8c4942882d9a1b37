package raycast

import "image/color"

// Point represents a 2D point in space. It doubles as a 2D vector.
type Point struct {
	X, Y float64
}

// Wall represents an opaque wall segment that stops and reflects rays
type Wall struct {
	P0, P1 Point
	Color  color.NRGBA
}

// Hit is the nearest intersection found by a cast.
type Hit struct {
	Point Point
	Wall  int // Index into the wall slice the cast was given
}

// Segment is one straight piece of a traced ray
type Segment struct {
	Start, End Point
	Color      color.NRGBA
}
