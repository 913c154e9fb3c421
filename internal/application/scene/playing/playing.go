// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/gallery/internal/application/scene"
	"github.com/younwookim/gallery/internal/application/state"
	"github.com/younwookim/gallery/internal/application/system"
	"github.com/younwookim/gallery/internal/domain/entity"
)

// Colors for rendering
var (
	colorHostile    = color.RGBA{200, 60, 60, 255}
	colorFlash      = color.RGBA{255, 255, 255, 255}
	colorNeutral    = color.RGBA{80, 130, 220, 255}
	colorAmbiguous  = color.RGBA{150, 150, 160, 255}
	colorPickup     = color.RGBA{80, 200, 100, 255}
	colorMarker     = color.RGBA{255, 230, 120, 255}
	colorAttack     = color.NRGBA{255, 40, 40, 90}
	colorHitHostile = color.NRGBA{200, 0, 0, 110}
	colorHitOwn     = color.NRGBA{255, 140, 0, 110}
	colorAmmo       = color.RGBA{230, 200, 90, 255}
	colorAmmoEmpty  = color.RGBA{70, 70, 70, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 160}
)

// One background per theme; levels wrap over them
var backgrounds = []color.RGBA{
	{46, 38, 30, 255},
	{30, 44, 58, 255},
	{52, 30, 44, 255},
	{28, 48, 34, 255},
}

// Playing is the main gameplay scene
type Playing struct {
	driver *system.FrameDriver
	state  *state.GameState
	router scene.Router
	tapped func() bool
}

// New creates a new Playing scene. tapped reports whether the pointer
// was pressed this frame and is only used on the game over screen.
func New(driver *system.FrameDriver, router scene.Router, tapped func() bool) *Playing {
	return &Playing{
		driver: driver,
		state:  driver.State(),
		router: router,
		tapped: tapped,
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	if p.state.IsGameOver() {
		if p.tapped() {
			p.driver.Reset()
		}
		return scene.Transition(p.router, p.state, state.ScreenPlaying), nil
	}

	for _, intent := range p.driver.Update() {
		if r, ok := intent.(system.ReloadIntent); ok && !r.Reloaded {
			log.Printf("[Playing] Reload ignored, magazine full")
		}
	}
	return scene.Transition(p.router, p.state, state.ScreenPlaying), nil
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	log.Printf("[Scene] Playing (level %d)", p.state.Level())
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	now := p.state.Now()
	screen.Fill(backgrounds[p.state.BackgroundIndex()%len(backgrounds)])

	// Reload shake moves the whole field
	var shakeX float32
	if p.state.ReloadShaking() {
		shakeX = float32(4 * math.Sin(float64(now.Milliseconds())/20))
	}

	p.drawRoster(screen, p.state.Pickups(), shakeX)
	p.drawRoster(screen, p.state.Neutrals(), shakeX)
	p.drawRoster(screen, p.state.Ambiguous(), shakeX)
	p.drawRoster(screen, p.state.Hostiles(), shakeX)
	p.drawEffects(screen, shakeX)
	p.drawPlayerHit(screen)
	p.drawHUD(screen)

	if p.state.IsGameOver() {
		p.drawGameOver(screen)
	}
}

func (p *Playing) drawRoster(screen *ebiten.Image, roster entity.Roster, shakeX float32) {
	now := p.state.Now()
	for _, n := range roster {
		if !n.Alive {
			continue
		}
		x, y := float32(n.X)+shakeX, float32(n.Y)
		w, h := float32(n.W), float32(n.H)

		switch n.Kind {
		case entity.KindHostile:
			c := colorHostile
			if n.FlashOn(now) {
				c = colorFlash
			}
			vector.DrawFilledRect(screen, x, y, w, h, c, false)
		case entity.KindNeutral:
			vector.DrawFilledRect(screen, x, y, w, h, colorNeutral, false)
		case entity.KindAmbiguous:
			vector.DrawFilledRect(screen, x, y, w, h, colorAmbiguous, false)
		case entity.KindPickup:
			// Cross
			vector.DrawFilledRect(screen, x+w/3, y, w/3, h, colorPickup, false)
			vector.DrawFilledRect(screen, x, y+h/3, w, h/3, colorPickup, false)
		}
	}
}

func (p *Playing) drawEffects(screen *ebiten.Image, shakeX float32) {
	now := p.state.Now()
	for _, m := range p.state.HitMarkers() {
		vector.StrokeCircle(screen, float32(m.X)+shakeX, float32(m.Y), float32(m.Radius), 2, colorMarker, true)
	}
	for _, e := range p.state.AttackEffects() {
		vector.DrawFilledCircle(screen, float32(e.X)+shakeX, float32(e.Y), float32(e.Radius(now)), colorAttack, true)
	}
}

func (p *Playing) drawPlayerHit(screen *ebiten.Image) {
	if !p.state.IsPlayerHit() {
		return
	}
	c := colorHitOwn
	if p.state.IsHitByHostile() {
		c = colorHitHostile
	}
	w, h := p.state.FieldSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), c, false)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	w, h := p.state.FieldSize()

	hud := fmt.Sprintf("Lives: %d  Score: %d  Level: %d", p.state.Lives(), p.state.Score(), p.state.Level())
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	// Magazine
	for i := 0; i < entity.MagazineSize; i++ {
		c := colorAmmoEmpty
		if i < p.state.Ammo() {
			c = colorAmmo
		}
		vector.DrawFilledRect(screen, float32(10+i*12), float32(h)-30, 8, 20, c, false)
	}

	switch {
	case p.state.ReloadSucceeded():
		ebitenutil.DebugPrintAt(screen, "Reloaded!", int(w)/2-27, int(h)-60)
	case p.state.Ammo() == 0:
		ebitenutil.DebugPrintAt(screen, "Swipe up to reload", int(w)/2-54, int(h)-60)
	case p.state.FirstShotHintVisible():
		ebitenutil.DebugPrintAt(screen, "Tap to shoot", int(w)/2-36, int(h)-60)
	}
}

func (p *Playing) drawGameOver(screen *ebiten.Image) {
	w, h := p.state.FieldSize()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)

	text := fmt.Sprintf("GAME OVER\n\nScore: %d\n\nTap to continue", p.state.Score())
	ebitenutil.DebugPrintAt(screen, text, int(w)/2-45, int(h)/2-40)
}
