package game

import (
	"errors"
	"image/color"
	"testing"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
)

// fakeInput replays the input of a single tick
type fakeInput struct {
	keys    map[render.Key]bool
	buttons map[render.MouseButton]bool
	x, y    int
	wheelY  float64
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		keys:    make(map[render.Key]bool),
		buttons: make(map[render.MouseButton]bool),
	}
}

func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.keys[key] }
func (f *fakeInput) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return f.buttons[button]
}
func (f *fakeInput) GetCursorPosition() (int, int) { return f.x, f.y }
func (f *fakeInput) Wheel() (float64, float64)     { return 0, f.wheelY }

func (f *fakeInput) reset() {
	f.keys = make(map[render.Key]bool)
	f.buttons = make(map[render.MouseButton]bool)
	f.wheelY = 0
}

// fakeImage is a render.Image with no pixels
type fakeImage struct {
	w, h   int
	filled color.Color
}

func (i *fakeImage) Size() (int, int)     { return i.w, i.h }
func (i *fakeImage) Fill(clr color.Color) { i.filled = clr }
func (i *fakeImage) Dispose()             {}

// fakeRenderer records drawing calls
type fakeRenderer struct {
	lines   []float32 // stroke widths, one per line
	circles [][2]float32
	texts   []string
}

func (r *fakeRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	r.lines = append(r.lines, width)
}
func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.circles = append(r.circles, [2]float32{x, y})
}
func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.texts = append(r.texts, text)
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Window.Width = 200
	cfg.Window.Height = 100
	cfg.Scene.Seed = 1
	cfg.Scene.WallCount = 0
	cfg.Rays.Count = 8
	cfg.Rays.MaxCount = 10
	cfg.Rays.Bounce = 2
	cfg.Rays.MaxBounce = 3
	cfg.Caster.Workers = 2
	return cfg
}

func TestUpdateAdjustsBounce(t *testing.T) {
	input := newFakeInput()
	g := NewGame(testConfig(), &fakeRenderer{}, input)

	input.buttons[render.MouseButtonLeft] = true
	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if g.RayBounce != 3 {
		t.Errorf("Expected bounce clamped at 3, got %d", g.RayBounce)
	}

	input.reset()
	input.buttons[render.MouseButtonRight] = true
	for i := 0; i < 5; i++ {
		_ = g.Update()
	}
	if g.RayBounce != 1 {
		t.Errorf("Expected bounce clamped at 1, got %d", g.RayBounce)
	}
}

func TestUpdateAdjustsRayCount(t *testing.T) {
	input := newFakeInput()
	g := NewGame(testConfig(), &fakeRenderer{}, input)

	input.wheelY = 1
	for i := 0; i < 5; i++ {
		_ = g.Update()
	}
	if g.RayCount != 10 {
		t.Errorf("Expected ray count clamped at 10, got %d", g.RayCount)
	}

	input.wheelY = -1
	for i := 0; i < 20; i++ {
		_ = g.Update()
	}
	if g.RayCount != 1 {
		t.Errorf("Expected ray count clamped at 1, got %d", g.RayCount)
	}

	input.wheelY = 0
	_ = g.Update()
	if g.RayCount != 1 {
		t.Errorf("Expected no change without scrolling, got %d", g.RayCount)
	}
}

func TestUpdateKeys(t *testing.T) {
	input := newFakeInput()
	cfg := testConfig()
	cfg.Scene.WallCount = 4
	g := NewGame(cfg, &fakeRenderer{}, input)
	first := append([]raycast.Wall(nil), g.Walls...)

	input.keys[render.KeyR] = true
	input.keys[render.KeyD] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !g.ShowDebug {
		t.Error("Expected debug overlay to be toggled on")
	}
	if len(g.Walls) != 4 {
		t.Fatalf("Expected 4 regenerated walls, got %d", len(g.Walls))
	}
	if g.Walls[0] == first[0] {
		t.Error("Expected regenerated walls to differ")
	}

	input.reset()
	input.keys[render.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestDrawInsideBorder(t *testing.T) {
	input := newFakeInput()
	input.x, input.y = 100, 50
	cfg := testConfig()
	cfg.Scene.BorderWalls = true
	r := &fakeRenderer{}
	g := NewGame(cfg, r, input)
	g.ShowDebug = true

	screen := &fakeImage{w: cfg.Window.Width, h: cfg.Window.Height}
	g.Draw(screen)

	if screen.filled == nil {
		t.Error("Expected the background to be filled")
	}
	if len(r.circles) != 1 {
		t.Errorf("Expected one pointer circle, got %d", len(r.circles))
	}

	walls, rays := 0, 0
	for _, w := range r.lines {
		if w == float32(cfg.Scene.WallWeight) {
			walls++
		} else {
			rays++
		}
	}
	if walls != 4 {
		t.Errorf("Expected 4 wall strokes, got %d", walls)
	}
	// Every ray hits the border and bounces once more before stopping.
	if want := (cfg.Rays.Count - g.LastSkipped) * cfg.Rays.Bounce; rays != want {
		t.Errorf("Expected %d ray strokes, got %d", want, rays)
	}
	if len(r.texts) != 1 {
		t.Errorf("Expected the debug overlay, got %d texts", len(r.texts))
	}
}

func TestDrawClampsPointerToScreen(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		wantX float32
		wantY float32
	}{
		{"inside", 40, 60, 40, 60},
		{"left and below", -50, 500, 0, 99},
		{"right and above", 900, -3, 199, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := newFakeInput()
			input.x, input.y = tt.x, tt.y
			cfg := testConfig()
			cfg.Scene.BorderWalls = true
			r := &fakeRenderer{}
			g := NewGame(cfg, r, input)

			g.Draw(&fakeImage{w: cfg.Window.Width, h: cfg.Window.Height})

			if len(r.circles) != 1 {
				t.Fatalf("Expected one pointer circle, got %d", len(r.circles))
			}
			if got := r.circles[0]; got[0] != tt.wantX || got[1] != tt.wantY {
				t.Errorf("Expected pointer at (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, got[0], got[1])
			}
		})
	}
}

func TestLayoutKeepsConfiguredSize(t *testing.T) {
	g := NewGame(testConfig(), &fakeRenderer{}, newFakeInput())
	w, h := g.Layout(1920, 1080)
	if w != 200 || h != 100 {
		t.Errorf("Expected 200x100, got %dx%d", w, h)
	}
}
