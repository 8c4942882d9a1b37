package raycast

import "math"

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale multiplies both components by s
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of p
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Perp returns p rotated by 90 degrees counter-clockwise
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Normalize returns p scaled to unit length. The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// AngleBetween returns the signed angle in radians, in (-π, π], that rotates p onto q.
// If either vector is zero the angle is 0.
func (p Point) AngleBetween(q Point) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q))
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}
