package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/render/snapshot"
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if *snapshotPath != "" {
		if err := renderSnapshot(cfg, *snapshotPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.NewGame(cfg, renderer, inputMgr)
	g.ShowDebug = *debugFlag

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Printf("Starting viewer with %d walls, %d rays, bounce %d", len(g.Walls), g.RayCount, g.RayBounce)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// renderSnapshot draws a single frame off-screen and writes it as a PNG.
func renderSnapshot(cfg *config.Config, path string) error {
	if *debugFlag {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	x, y, err := parseOrigin(*originFlag, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}

	renderer := snapshot.NewRenderer()
	g := game.NewGame(cfg, renderer, snapshot.NewInputManager(x, y))

	screen := renderer.NewImage(cfg.Window.Width, cfg.Window.Height)
	defer screen.Dispose()

	g.Draw(screen)
	if err := screen.SavePNG(path); err != nil {
		return err
	}

	log.Printf("Wrote %s (origin %d,%d, %d rays skipped)", path, x, y, g.LastSkipped)
	return nil
}
