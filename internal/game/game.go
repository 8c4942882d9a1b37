package game

import (
	"image"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/scene"
)

// Game holds the viewer state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *config.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Scene
	Generator *scene.Generator
	Walls     []raycast.Wall
	Caster    *raycast.Caster

	// Ray fan settings, adjusted from input
	RayCount  int
	RayBounce int

	// Debug overlay
	ShowDebug   bool
	LastSkipped int // Rays dropped on ambiguous corners in the last frame
	FrameCount  int
}

// NewGame creates a game with a freshly generated scene.
func NewGame(cfg *config.Config, r render.Renderer, input render.InputManager) *Game {
	bounds := image.Rect(0, 0, cfg.Window.Width, cfg.Window.Height)

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Generator:    scene.NewGenerator(bounds, cfg.Scene.Seed),
		Caster:       raycast.NewCaster(cfg.RaycastConfig()),
		RayCount:     cfg.Rays.Count,
		RayBounce:    cfg.Rays.Bounce,
	}
	g.Regenerate()
	return g
}

// Regenerate replaces the walls with a new random scene.
func (g *Game) Regenerate() {
	g.Walls = g.Generator.Build(g.Config.Scene.WallCount, g.Config.Scene.BorderWalls)
	log.Printf("Generated %d walls", len(g.Walls))
}

// Update handles input. It returns render.ErrQuit when the user asks to leave.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	g.handleClick()
	g.handleWheel()

	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Regenerate()
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyD) {
		g.ShowDebug = !g.ShowDebug
	}

	return nil
}

// handleClick adds a bounce on left click and removes one on right click
func (g *Game) handleClick() {
	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		g.RayBounce = g.Config.ClampBounce(g.RayBounce + 1)
	}
	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonRight) {
		g.RayBounce = g.Config.ClampBounce(g.RayBounce - 1)
	}
}

// handleWheel adds a ray when scrolling up and removes one when scrolling down
func (g *Game) handleWheel() {
	_, dy := g.InputMgr.Wheel()
	switch {
	case dy > 0:
		g.RayCount = g.Config.ClampRayCount(g.RayCount + 1)
	case dy < 0:
		g.RayCount = g.Config.ClampRayCount(g.RayCount - 1)
	}
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
