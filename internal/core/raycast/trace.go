package raycast

import "image/color"

// Sink receives the segments of a traced ray as they are computed
type Sink interface {
	DrawSegment(seg Segment)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(seg Segment)

// DrawSegment calls f(seg)
func (f SinkFunc) DrawSegment(seg Segment) {
	f(seg)
}

// Trace records segments in the order they were drawn
type Trace struct {
	Segments []Segment
}

// DrawSegment appends seg to the trace
func (t *Trace) DrawSegment(seg Segment) {
	t.Segments = append(t.Segments, seg)
}

// Reset empties the trace, keeping its storage
func (t *Trace) Reset() {
	t.Segments = t.Segments[:0]
}

// MixColors moves the ray color two thirds of the way towards the wall color.
// The ray's alpha is kept.
func MixColors(ray, wall color.NRGBA) color.NRGBA {
	mix := func(a, b uint8) uint8 {
		v := uint16(a)/3 + uint16(b)*2/3
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	return color.NRGBA{
		R: mix(ray.R, wall.R),
		G: mix(ray.G, wall.G),
		B: mix(ray.B, wall.B),
		A: ray.A,
	}
}

// Trace follows a ray from origin along dir through up to budget wall hits,
// reporting each traversed segment to sink. After every hit but the last the ray
// bounces off the struck wall and its color is mixed towards the wall's.
// A ray that hits nothing is drawn out to MaxDistance and stops.
//
// ErrAmbiguousCorner aborts the whole trace; segments already drawn stay drawn.
func (c *Caster) Trace(origin, dir Point, clr color.NRGBA, walls []Wall, budget int, sink Sink) error {
	for {
		hit, ok, err := c.Cast(origin, dir, walls)
		if err != nil {
			return err
		}

		if !ok {
			sink.DrawSegment(Segment{
				Start: origin,
				End:   origin.Add(dir.Normalize().Scale(c.cfg.MaxDistance)),
				Color: clr,
			})
			return nil
		}

		sink.DrawSegment(Segment{Start: origin, End: hit.Point, Color: clr})

		if budget <= 1 {
			return nil
		}

		wall := walls[hit.Wall]
		origin = hit.Point
		dir = wall.Bounce(dir.Normalize())
		clr = MixColors(clr, wall.Color)
		budget--
	}
}
