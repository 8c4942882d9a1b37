// Package raycast finds where rays stop against opaque wall segments and traces
// their specular bounces.
package raycast

import (
	"errors"
	"fmt"
	"math"
)

// ErrAmbiguousCorner is returned when two walls intersect the ray too close to its
// origin to tell which one is hit first, which happens when a ray grazes a vertex
// shared by two walls.
var ErrAmbiguousCorner = errors.New("possibly hit a corner, aborting bounce")

// Config holds the tunables of a Caster
type Config struct {
	MaxDistance        float64 // Rays that hit nothing stop after this distance
	CornerThreshold    float64 // Intersections closer than this to the origin are ambiguous
	DirectionTolerance float64 // Radians a hit may deviate from the ray direction
	RejectTolerance    float64 // Radians used by Wall.Rejects around π
	Workers            int     // Goroutines used by TraceFan, <= 0 means one per CPU
}

// DefaultConfig returns the tunables the viewer ships with
func DefaultConfig() Config {
	return Config{
		MaxDistance:        10000,
		CornerThreshold:    5,
		DirectionTolerance: 0.001,
		RejectTolerance:    0.01,
	}
}

// Caster casts and traces rays against a set of walls.
// A Caster holds no per-ray state and is safe for concurrent use.
type Caster struct {
	cfg Config
}

// NewCaster creates a caster with the given configuration
func NewCaster(cfg Config) *Caster {
	return &Caster{cfg: cfg}
}

// Config returns the caster's configuration
func (c *Caster) Config() Config {
	return c.cfg
}

// Intersect returns the intersection of the infinite lines through a and b.
// Returns false when the lines are parallel or either wall is degenerate.
func Intersect(a, b Wall) (Point, bool) {
	x1, y1 := a.P0.X, a.P0.Y
	x2, y2 := a.P1.X, a.P1.Y
	x3, y3 := b.P0.X, b.P0.Y
	x4, y4 := b.P1.X, b.P1.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return Point{}, false
	}

	numX := (x1*y2-y1*x2)*(x3-x4) - (x1-x2)*(x3*y4-y3*x4)
	numY := (x1*y2-y1*x2)*(y3-y4) - (y1-y2)*(x3*y4-y3*x4)

	return Point{numX / denom, numY / denom}, true
}

// Cast finds the nearest wall struck by the ray leaving origin along dir.
// It returns false when the ray escapes to MaxDistance without a hit.
//
// Every line intersection closer than CornerThreshold counts towards the corner
// guard, whatever its direction. A ray starting on the wall it bounced off always
// produces one such intersection, so the first is skipped and the second fails
// with ErrAmbiguousCorner.
func (c *Caster) Cast(origin, dir Point, walls []Wall) (Hit, bool, error) {
	ray := WallFromPoints(origin, origin.Add(dir))

	var (
		closest  Hit
		found    bool
		dist     float64
		tooClose int
	)

	for i, wall := range walls {
		intersection, ok := Intersect(ray, wall)
		if !ok {
			continue
		}

		toHit := intersection.Sub(origin)
		newDist := toHit.Length()

		if newDist < c.cfg.CornerThreshold {
			tooClose++
			if tooClose == 2 {
				return Hit{}, false, fmt.Errorf("cast from (%.2f, %.2f): %w", origin.X, origin.Y, ErrAmbiguousCorner)
			}
			continue
		}

		rightDir := math.Abs(toHit.AngleBetween(dir)) < c.cfg.DirectionTolerance
		if !rightDir || newDist >= c.cfg.MaxDistance || wall.Rejects(intersection, c.cfg.RejectTolerance) {
			continue
		}

		if !found || newDist < dist {
			dist = newDist
			closest = Hit{Point: intersection, Wall: i}
			found = true
		}
	}

	return closest, found, nil
}
