// Package menu provides the title and intro screens.
package menu

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/gallery/internal/application/scene"
	"github.com/younwookim/gallery/internal/application/state"
)

var (
	colorTitleBG = color.RGBA{26, 26, 46, 255}
	colorIntroBG = color.RGBA{20, 36, 40, 255}
)

// card is a full-screen text page that advances on a tap
type card struct {
	state  *state.GameState
	router scene.Router
	tapped func() bool
	screen state.Screen
	bg     color.Color
	lines  []string
	name   string
}

func (c *card) draw(screen *ebiten.Image) {
	screen.Fill(c.bg)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	y := h/2 - len(c.lines)*10
	for _, line := range c.lines {
		// DebugPrint glyphs are 6px wide
		ebitenutil.DebugPrintAt(screen, line, (w-len(line)*6)/2, y)
		y += 20
	}
}

// Title is the first screen. A tap starts the game, via the intro the
// first time.
type Title struct {
	card
}

// NewTitle creates the title scene. tapped reports whether the pointer
// was pressed this frame.
func NewTitle(s *state.GameState, router scene.Router, tapped func() bool) *Title {
	return &Title{card{
		state:  s,
		router: router,
		tapped: tapped,
		screen: state.ScreenTitle,
		bg:     colorTitleBG,
		name:   "Title",
		lines: []string{
			"SHOOTING GALLERY",
			"",
			"Tap to start",
		},
	}}
}

// Update implements scene.Scene
func (t *Title) Update() (scene.Scene, error) {
	if t.tapped() {
		t.state.Start()
	}
	return scene.Transition(t.router, t.state, t.screen), nil
}

// Draw implements scene.Scene
func (t *Title) Draw(screen *ebiten.Image) { t.draw(screen) }

// OnEnter implements scene.Scene
func (t *Title) OnEnter() { log.Printf("[Scene] %s", t.name) }

// OnExit implements scene.Scene
func (t *Title) OnExit() {}

// Intro explains the rules before the first game
type Intro struct {
	card
}

// NewIntro creates the intro scene
func NewIntro(s *state.GameState, router scene.Router, tapped func() bool) *Intro {
	return &Intro{card{
		state:  s,
		router: router,
		tapped: tapped,
		screen: state.ScreenIntro,
		bg:     colorIntroBG,
		name:   "Intro",
		lines: []string{
			"HOW TO PLAY",
			"",
			"Tap to shoot the gunmen (red)",
			"Bystanders (blue) cost a life",
			"Grey figures decide when they stop",
			"A flashing gunman is about to fire",
			"Swipe up to reload",
			"Shoot a green cross for a life",
			"",
			"Tap to continue",
		},
	}}
}

// Update implements scene.Scene
func (i *Intro) Update() (scene.Scene, error) {
	if i.tapped() {
		i.state.Next()
	}
	return scene.Transition(i.router, i.state, i.screen), nil
}

// Draw implements scene.Scene
func (i *Intro) Draw(screen *ebiten.Image) { i.draw(screen) }

// OnEnter implements scene.Scene
func (i *Intro) OnEnter() { log.Printf("[Scene] %s", i.name) }

// OnExit implements scene.Scene
func (i *Intro) OnExit() {}
