package main

import (
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gallery/internal/application/system"
	"github.com/younwookim/gallery/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 = time based)")
	configsFlag := flag.String("configs", "", "Load configs from this directory instead of the embedded ones")
	flag.Parse()

	cfg, err := loadConfig(*configsFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[Main] Seed: %d", seed)

	a := newApp(cfg, seed, log.Default(), system.NewPointerSource(), system.JustTapped)

	// Set up ebiten
	display := cfg.Tuning.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Shooting Gallery")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(a.game); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the config files from dir, or from the embedded copy
// when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}
