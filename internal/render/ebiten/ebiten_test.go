package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/raycaster/internal/render"
)

func TestKeyToEbitenKey(t *testing.T) {
	tests := []struct {
		key    render.Key
		want   ebiten.Key
		wantOK bool
	}{
		{render.KeyD, ebiten.KeyD, true},
		{render.KeyR, ebiten.KeyR, true},
		{render.KeyEscape, ebiten.KeyEscape, true},
		{render.Key(99), 0, false},
		{render.Key(-1), 0, false},
	}

	for _, tt := range tests {
		got, ok := keyToEbitenKey(tt.key)
		if ok != tt.wantOK {
			t.Errorf("keyToEbitenKey(%d): expected ok=%v, got %v", tt.key, tt.wantOK, ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("keyToEbitenKey(%d): expected %v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestUnmappedKeyIsNeverPressed(t *testing.T) {
	m := NewInputManager()
	if m.IsKeyJustPressed(render.Key(99)) {
		t.Error("Expected an unmapped key to report not pressed")
	}
}

func TestMouseButtonToEbiten(t *testing.T) {
	tests := []struct {
		button render.MouseButton
		want   ebiten.MouseButton
	}{
		{render.MouseButtonLeft, ebiten.MouseButtonLeft},
		{render.MouseButtonRight, ebiten.MouseButtonRight},
		{render.MouseButtonMiddle, ebiten.MouseButtonMiddle},
	}

	for _, tt := range tests {
		if got := mouseButtonToEbiten(tt.button); got != tt.want {
			t.Errorf("mouseButtonToEbiten(%d): expected %v, got %v", tt.button, tt.want, got)
		}
	}
}
