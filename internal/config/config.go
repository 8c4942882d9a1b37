// Package config provides the tunables of the ray-casting viewer.
// Values can be loaded from a JSON file so each scene setup can be reproduced.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Config holds every tunable of the viewer
type Config struct {
	// Window and logical screen size
	Window WindowConfig `json:"window"`

	// Wall generation
	Scene SceneConfig `json:"scene"`

	// Ray fan drawn from the pointer
	Rays RayConfig `json:"rays"`

	// Nearest-hit rules
	Caster CasterConfig `json:"caster"`
}

// WindowConfig defines the window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// SceneConfig defines how walls are generated
type SceneConfig struct {
	WallCount   int     `json:"wall_count"`   // Random walls per scene
	WallWeight  float64 `json:"wall_weight"`  // Stroke width walls are drawn with
	Seed        int64   `json:"seed"`         // 0 seeds from the clock
	BorderWalls bool    `json:"border_walls"` // Close the window edges with white walls
}

// RayConfig defines the ray fan and its input clamps
type RayConfig struct {
	Count     int   `json:"count"`      // Rays per frame
	MaxCount  int   `json:"max_count"`  // Upper clamp for Count
	Bounce    int   `json:"bounce"`     // Bounce budget per ray
	MaxBounce int   `json:"max_bounce"` // Upper clamp for Bounce
	Alpha     uint8 `json:"alpha"`      // Alpha rays are drawn with
}

// CasterConfig defines the geometric tolerances of the ray caster
type CasterConfig struct {
	MaxDistance        float64 `json:"max_distance"`
	CornerThreshold    float64 `json:"corner_threshold"` // Usually the wall weight
	DirectionTolerance float64 `json:"direction_tolerance"`
	RejectTolerance    float64 `json:"reject_tolerance"`
	Workers            int     `json:"workers"` // 0 uses one goroutine per CPU
}

// DefaultConfig returns the settings the viewer starts with
func DefaultConfig() *Config {
	cc := raycast.DefaultConfig()

	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Raycaster",
		},
		Scene: SceneConfig{
			WallCount:  10,
			WallWeight: 5,
		},
		Rays: RayConfig{
			Count:     1000,
			MaxCount:  20000,
			Bounce:    3,
			MaxBounce: 255,
			Alpha:     5,
		},
		Caster: CasterConfig{
			MaxDistance:        cc.MaxDistance,
			CornerThreshold:    cc.CornerThreshold,
			DirectionTolerance: cc.DirectionTolerance,
			RejectTolerance:    cc.RejectTolerance,
			Workers:            cc.Workers,
		},
	}
}

// LoadConfig loads the config from a JSON file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Scene.WallCount < 0:
		return fmt.Errorf("scene.wall_count %d must not be negative", c.Scene.WallCount)
	case c.Scene.WallWeight <= 0:
		return fmt.Errorf("scene.wall_weight %v must be positive", c.Scene.WallWeight)
	case c.Rays.MaxCount < 1:
		return fmt.Errorf("rays.max_count %d must be at least 1", c.Rays.MaxCount)
	case c.Rays.Count < 1 || c.Rays.Count > c.Rays.MaxCount:
		return fmt.Errorf("rays.count %d must be within [1, %d]", c.Rays.Count, c.Rays.MaxCount)
	case c.Rays.MaxBounce < 1 || c.Rays.MaxBounce > 255:
		return fmt.Errorf("rays.max_bounce %d must be within [1, 255]", c.Rays.MaxBounce)
	case c.Rays.Bounce < 1 || c.Rays.Bounce > c.Rays.MaxBounce:
		return fmt.Errorf("rays.bounce %d must be within [1, %d]", c.Rays.Bounce, c.Rays.MaxBounce)
	case c.Caster.MaxDistance <= 0:
		return fmt.Errorf("caster.max_distance %v must be positive", c.Caster.MaxDistance)
	case c.Caster.CornerThreshold < 0:
		return fmt.Errorf("caster.corner_threshold %v must not be negative", c.Caster.CornerThreshold)
	case c.Caster.DirectionTolerance <= 0 || c.Caster.RejectTolerance <= 0:
		return fmt.Errorf("caster tolerances must be positive")
	}
	return nil
}

// RaycastConfig converts the caster settings for raycast.NewCaster
func (c *Config) RaycastConfig() raycast.Config {
	return raycast.Config{
		MaxDistance:        c.Caster.MaxDistance,
		CornerThreshold:    c.Caster.CornerThreshold,
		DirectionTolerance: c.Caster.DirectionTolerance,
		RejectTolerance:    c.Caster.RejectTolerance,
		Workers:            c.Caster.Workers,
	}
}

// ClampRayCount keeps n within [1, Rays.MaxCount]
func (c *Config) ClampRayCount(n int) int {
	return clamp(n, 1, c.Rays.MaxCount)
}

// ClampBounce keeps n within [1, Rays.MaxBounce]
func (c *Config) ClampBounce(n int) int {
	return clamp(n, 1, c.Rays.MaxBounce)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
