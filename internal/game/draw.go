package game

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"golang.org/x/image/colornames"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
)

const (
	pointerRadius = 3
	rayWidth      = 1
)

// Draw renders the walls, the pointer and the ray fan to the screen.
func (g *Game) Draw(screen render.Image) {
	g.FrameCount++

	screen.Fill(colornames.Black)
	g.drawWalls(screen)

	w, h := screen.Size()
	x, y := g.InputMgr.GetCursorPosition()
	x, y = clamp(x, 0, w-1), clamp(y, 0, h-1)
	origin := raycast.Point{X: float64(x), Y: float64(y)}
	g.Renderer.FillCircle(screen, float32(x), float32(y), pointerRadius, colornames.Yellow)

	g.drawRays(screen, origin)

	if g.ShowDebug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawWalls(screen render.Image) {
	weight := float32(g.Config.Scene.WallWeight)
	for _, wall := range g.Walls {
		g.Renderer.StrokeLine(screen,
			float32(wall.P0.X), float32(wall.P0.Y),
			float32(wall.P1.X), float32(wall.P1.Y),
			weight, wall.Color)
	}
}

func (g *Game) drawRays(screen render.Image, origin raycast.Point) {
	rayColor := color.NRGBA{255, 255, 255, g.Config.Rays.Alpha}

	fan, err := g.Caster.TraceFan(context.Background(), origin, g.RayCount, rayColor, g.Walls, g.RayBounce)
	if err != nil {
		log.Printf("Warning: ray fan failed: %v", err)
		return
	}
	g.LastSkipped = fan.Skipped

	for _, trace := range fan.Traces {
		for _, seg := range trace.Segments {
			g.Renderer.StrokeLine(screen,
				float32(seg.Start.X), float32(seg.Start.Y),
				float32(seg.End.X), float32(seg.End.Y),
				rayWidth, seg.Color)
		}
	}
}

func (g *Game) drawDebug(screen render.Image) {
	msg := fmt.Sprintf("rays: %d  bounce: %d  skipped: %d  walls: %d",
		g.RayCount, g.RayBounce, g.LastSkipped, len(g.Walls))
	g.Renderer.DrawText(screen, msg, 8, 8, colornames.White)
}

// clamp keeps the cursor on screen when it leaves the window.
func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
