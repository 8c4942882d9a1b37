// Package snapshot renders frames off-screen with the gg software rasterizer
// so a scene can be written to a PNG file without opening a window.
package snapshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"chosenoffset.com/raycaster/internal/render"
)

// Renderer implements render.Renderer on top of gg contexts.
type Renderer struct{}

// NewRenderer creates a new gg-based renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// NewImage creates a new transparent image with the given dimensions.
func (r *Renderer) NewImage(width, height int) *Image {
	return &Image{dc: gg.NewContext(width, height)}
}

// StrokeLine draws a line segment on the destination image.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	img := dst.(*Image)
	img.dc.SetColor(clr)
	img.dc.SetLineWidth(float64(strokeWidth))
	img.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	img.record(img.dc.Stroke())
}

// FillCircle draws a filled circle on the destination image.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	img := dst.(*Image)
	img.dc.SetColor(clr)
	img.dc.DrawCircle(float64(x), float64(y), float64(radius))
	img.record(img.dc.Fill())
}

// DrawText is a no-op: snapshots carry no overlay text.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {}

// Image wraps a gg.Context to implement the render.Image interface.
// The first drawing error is kept and reported by SavePNG.
type Image struct {
	dc  *gg.Context
	err error
}

func (i *Image) record(err error) {
	if err != nil && i.err == nil {
		i.err = err
	}
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.dc.Width(), i.dc.Height()
}

// Fill fills the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.dc.ClearWithColor(gg.FromColor(clr))
}

// Dispose releases the context.
func (i *Image) Dispose() {
	i.record(i.dc.Close())
}

// Image returns the rendered pixels.
func (i *Image) Image() image.Image {
	return i.dc.Image()
}

// SavePNG writes the image to path. It fails if any drawing call failed.
func (i *Image) SavePNG(path string) error {
	if i.err != nil {
		return fmt.Errorf("rendering snapshot: %w", i.err)
	}
	if err := i.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", path, err)
	}
	return nil
}

// InputManager is a render.InputManager with a fixed cursor and no input events.
type InputManager struct {
	X, Y int
}

// NewInputManager creates an input manager whose cursor stays at (x, y).
func NewInputManager(x, y int) *InputManager {
	return &InputManager{X: x, Y: y}
}

// IsKeyJustPressed always reports false.
func (m *InputManager) IsKeyJustPressed(render.Key) bool { return false }

// IsMouseButtonJustPressed always reports false.
func (m *InputManager) IsMouseButtonJustPressed(render.MouseButton) bool { return false }

// GetCursorPosition returns the fixed cursor position.
func (m *InputManager) GetCursorPosition() (x, y int) { return m.X, m.Y }

// Wheel always reports no scrolling.
func (m *InputManager) Wheel() (dx, dy float64) { return 0, 0 }
