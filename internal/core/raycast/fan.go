package raycast

import (
	"context"
	"errors"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FanResult holds the traces of one ray fan, indexed by ray
type FanResult struct {
	Traces  []Trace // Traces[i] is empty when ray i was skipped
	Skipped int     // Rays dropped because of ErrAmbiguousCorner
}

// FanDirections returns count unit vectors evenly spread around the circle,
// starting along +X and turning counter-clockwise.
func FanDirections(count int) []Point {
	if count <= 0 {
		return nil
	}

	dirs := make([]Point, count)
	for i := range dirs {
		angle := float64(i) / float64(count) * 2 * math.Pi
		dirs[i] = Point{math.Cos(angle), math.Sin(angle)}
	}
	return dirs
}

// TraceFan traces count rays leaving origin in every direction. Rays run in
// parallel and share walls read-only. A ray aborted by ErrAmbiguousCorner is
// dropped whole. The only error returned is the context's.
func (c *Caster) TraceFan(ctx context.Context, origin Point, count int, clr color.NRGBA, walls []Wall, budget int) (FanResult, error) {
	dirs := FanDirections(count)
	result := FanResult{Traces: make([]Trace, len(dirs))}
	skipped := make([]bool, len(dirs))

	workers := c.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			trace := &result.Traces[i]
			if err := c.Trace(origin, dir, clr, walls, budget, trace); err != nil {
				if !errors.Is(err, ErrAmbiguousCorner) {
					return err
				}
				trace.Reset()
				skipped[i] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return FanResult{}, err
	}

	for _, s := range skipped {
		if s {
			result.Skipped++
		}
	}
	return result, nil
}
