package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"chosenoffset.com/raycaster/internal/config"
)

// Command-line flags. Zero values leave the config file (or default) untouched.
var (
	// configPath points at an optional JSON config file.
	configPath = flag.String("config", "raycaster.json", "path to the JSON config file")

	// snapshotPath renders a single frame to a PNG file instead of opening a window.
	snapshotPath = flag.String("snapshot", "", "render one frame to this PNG file and exit")

	// originFlag sets the ray origin used by -snapshot.
	originFlag = flag.String("origin", "", "ray origin for -snapshot as X,Y (default: screen center)")

	seedFlag    = flag.Int64("seed", 0, "wall generation seed (0 keeps the config value)")
	wallsFlag   = flag.Int("walls", -1, "number of random walls (-1 keeps the config value)")
	raysFlag    = flag.Int("rays", 0, "number of rays per frame (0 keeps the config value)")
	bounceFlag  = flag.Int("bounce", 0, "bounce budget per ray (0 keeps the config value)")
	workersFlag = flag.Int("workers", -1, "goroutines tracing rays, 0 for one per CPU (-1 keeps the config value)")

	// debugFlag enables the overlay and library diagnostics.
	debugFlag = flag.Bool("debug", false, "show the debug overlay and log renderer diagnostics")
)

// applyFlags overrides config values with the flags that were set.
func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Scene.Seed = *seedFlag
	}
	if *wallsFlag >= 0 {
		cfg.Scene.WallCount = *wallsFlag
	}
	if *raysFlag > 0 {
		cfg.Rays.Count = *raysFlag
		if cfg.Rays.Count > cfg.Rays.MaxCount {
			cfg.Rays.MaxCount = cfg.Rays.Count
		}
	}
	if *bounceFlag > 0 {
		cfg.Rays.Bounce = *bounceFlag
	}
	if *workersFlag >= 0 {
		cfg.Caster.Workers = *workersFlag
	}
}

// parseOrigin parses "X,Y"; an empty string yields the screen center.
func parseOrigin(s string, width, height int) (int, int, error) {
	if s == "" {
		return width / 2, height / 2, nil
	}

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("origin %q: want X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("origin %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("origin %q: %w", s, err)
	}
	return x, y, nil
}
