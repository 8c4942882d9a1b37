// Package scene builds the wall set a session casts rays against.
package scene

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

// maxRedraws bounds the retries for a wall whose endpoints coincide
const maxRedraws = 16

// Generator produces random walls inside a rectangle
type Generator struct {
	Rand   *rand.Rand
	Bounds image.Rectangle
}

// NewGenerator creates a generator for the given bounds. A seed of 0 seeds from the clock.
func NewGenerator(bounds image.Rectangle, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Rand:   rand.New(rand.NewSource(seed)),
		Bounds: bounds,
	}
}

// GenerateWalls returns count walls with uniformly random endpoints and colors.
// Walls never have zero length; an empty or single-pixel bounds yields no walls.
func (g *Generator) GenerateWalls(count int) []raycast.Wall {
	if count <= 0 || g.Bounds.Dx() <= 0 || g.Bounds.Dy() <= 0 {
		return nil
	}

	walls := make([]raycast.Wall, 0, count)
	for len(walls) < count {
		wall, ok := g.generateWall()
		if !ok {
			break
		}
		walls = append(walls, wall)
	}
	return walls
}

func (g *Generator) generateWall() (raycast.Wall, bool) {
	for i := 0; i < maxRedraws; i++ {
		p0 := g.generatePoint()
		p1 := g.generatePoint()
		if p0 == p1 {
			continue
		}
		return raycast.NewWall(p0, p1, g.generateColor()), true
	}
	return raycast.Wall{}, false
}

// generatePoint gives a point at random in the bounds
func (g *Generator) generatePoint() raycast.Point {
	return raycast.Point{
		X: float64(g.Bounds.Min.X) + g.Rand.Float64()*float64(g.Bounds.Dx()),
		Y: float64(g.Bounds.Min.Y) + g.Rand.Float64()*float64(g.Bounds.Dy()),
	}
}

func (g *Generator) generateColor() color.NRGBA {
	return color.NRGBA{
		R: uint8(g.Rand.Intn(256)),
		G: uint8(g.Rand.Intn(256)),
		B: uint8(g.Rand.Intn(256)),
		A: 255,
	}
}

// BorderWalls returns the four edges of bounds as walls, wound clockwise in
// screen coordinates starting at the top-left corner.
func BorderWalls(bounds image.Rectangle, c color.NRGBA) []raycast.Wall {
	minX, minY := float64(bounds.Min.X), float64(bounds.Min.Y)
	maxX, maxY := float64(bounds.Max.X), float64(bounds.Max.Y)

	return []raycast.Wall{
		raycast.NewWall(raycast.Point{X: minX, Y: minY}, raycast.Point{X: maxX, Y: minY}, c), // top
		raycast.NewWall(raycast.Point{X: maxX, Y: minY}, raycast.Point{X: maxX, Y: maxY}, c), // right
		raycast.NewWall(raycast.Point{X: maxX, Y: maxY}, raycast.Point{X: minX, Y: maxY}, c), // bottom
		raycast.NewWall(raycast.Point{X: minX, Y: maxY}, raycast.Point{X: minX, Y: minY}, c), // left
	}
}

// Build generates a full scene: count random walls, followed by the border when requested.
func (g *Generator) Build(count int, border bool) []raycast.Wall {
	walls := g.GenerateWalls(count)
	if border {
		walls = append(walls, BorderWalls(g.Bounds, raycast.DefaultWallColor)...)
	}
	return walls
}
