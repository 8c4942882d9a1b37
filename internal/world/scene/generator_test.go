package scene

import (
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

func TestGenerateWallsDeterministic(t *testing.T) {
	bounds := image.Rect(0, 0, 640, 480)

	a := NewGenerator(bounds, 7).GenerateWalls(20)
	b := NewGenerator(bounds, 7).GenerateWalls(20)

	if len(a) != 20 || len(b) != 20 {
		t.Fatalf("Expected 20 walls each, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Wall %d differs for the same seed: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateWallsInsideBounds(t *testing.T) {
	bounds := image.Rect(-100, 50, 300, 250)
	walls := NewGenerator(bounds, 99).GenerateWalls(200)

	inside := func(p raycast.Point) bool {
		return p.X >= float64(bounds.Min.X) && p.X <= float64(bounds.Max.X) &&
			p.Y >= float64(bounds.Min.Y) && p.Y <= float64(bounds.Max.Y)
	}

	for i, w := range walls {
		if !inside(w.P0) || !inside(w.P1) {
			t.Errorf("Wall %d leaves the bounds: %v", i, w)
		}
		if w.Degenerate() {
			t.Errorf("Wall %d has zero length", i)
		}
		if w.Color.A != 255 {
			t.Errorf("Wall %d is not opaque: %v", i, w.Color)
		}
	}
}

func TestGenerateWallsEmpty(t *testing.T) {
	if walls := NewGenerator(image.Rect(0, 0, 100, 100), 1).GenerateWalls(0); len(walls) != 0 {
		t.Errorf("Expected no walls, got %d", len(walls))
	}
	if walls := NewGenerator(image.Rectangle{}, 1).GenerateWalls(5); len(walls) != 0 {
		t.Errorf("Expected no walls for empty bounds, got %d", len(walls))
	}
}

func TestBorderWallsCloseTheRectangle(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 255}
	walls := BorderWalls(image.Rect(0, 0, 40, 30), c)

	if len(walls) != 4 {
		t.Fatalf("Expected 4 border walls, got %d", len(walls))
	}
	for i, w := range walls {
		next := walls[(i+1)%len(walls)]
		if w.P1 != next.P0 {
			t.Errorf("Border wall %d ends at %v but wall %d starts at %v", i, w.P1, (i+1)%4, next.P0)
		}
		if w.Color != c {
			t.Errorf("Border wall %d has color %v", i, w.Color)
		}
	}
}

func TestBorderStopsEveryRay(t *testing.T) {
	g := NewGenerator(image.Rect(0, 0, 200, 200), 3)
	walls := g.Build(0, true)
	caster := raycast.NewCaster(raycast.DefaultConfig())

	for i, dir := range raycast.FanDirections(12) {
		_, ok, err := caster.Cast(raycast.Point{X: 100, Y: 100}, dir, walls)
		if err != nil {
			t.Fatalf("Ray %d: unexpected error %v", i, err)
		}
		if !ok {
			t.Errorf("Ray %d escaped a closed border", i)
		}
	}
}
