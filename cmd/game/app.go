package main

import (
	"log"
	"math/rand"

	"github.com/younwookim/gallery/internal/application/game"
	"github.com/younwookim/gallery/internal/application/scene"
	"github.com/younwookim/gallery/internal/application/scene/menu"
	"github.com/younwookim/gallery/internal/application/scene/playing"
	"github.com/younwookim/gallery/internal/application/state"
	"github.com/younwookim/gallery/internal/application/system"
	"github.com/younwookim/gallery/internal/infrastructure/config"
)

// app is the wired game: one state, one driver, three scenes
type app struct {
	game    *game.Game
	state   *state.GameState
	driver  *system.FrameDriver
	screens *scene.Screens
}

// newApp builds the scene graph. pointer and tapped abstract Ebiten input
// so the graph can be built without a window.
func newApp(cfg *config.GameConfig, seed int64, logger *log.Logger, pointer system.PointerPoller, tapped func() bool) *app {
	rng := rand.New(rand.NewSource(seed))

	s := state.New(cfg.Tuning, rng)
	s.SetLogger(logger)

	spawner := system.NewSpawner(cfg.Spawns, system.BehaviorFromTuning(cfg.Tuning), rng)
	spawner.SetLogger(logger)

	driver := system.NewFrameDriver(s, pointer, system.NewGestureRecognizer(cfg.Tuning), spawner, cfg.Tuning.Display.Framerate)

	screens := &scene.Screens{}
	screens.Title = menu.NewTitle(s, screens, tapped)
	screens.Intro = menu.NewIntro(s, screens, tapped)
	screens.Playing = playing.New(driver, screens, tapped)

	return &app{
		game:    game.New(screens.Title, cfg.Tuning.Display.ScreenWidth, cfg.Tuning.Display.ScreenHeight),
		state:   s,
		driver:  driver,
		screens: screens,
	}
}
