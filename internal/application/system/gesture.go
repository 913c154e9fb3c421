package system

import (
	"math"
	"time"

	"github.com/younwookim/gallery/internal/application/state"
	"github.com/younwookim/gallery/internal/infrastructure/config"
)

// GestureRecognizer turns pointer events into shoot and reload actions.
//
// A tap (press and release within the short-press window without moving
// more than the tap slop) shoots at the release point. A single tap fires;
// there is no double-tap requirement. Dragging upward
// past the swipe distance reloads immediately and cancels the press.
// Shots inside the fire cooldown are dropped.
type GestureRecognizer struct {
	shortPress time.Duration
	cooldown   time.Duration
	swipe      float64
	slop       float64
	hitRadius  float64

	pressed        bool
	startX, startY float64
	startAt        time.Duration

	shotBefore bool
	lastShotAt time.Duration
}

// NewGestureRecognizer creates a recognizer from tuning values
func NewGestureRecognizer(cfg *config.TuningConfig) *GestureRecognizer {
	return &GestureRecognizer{
		shortPress: config.Ms(cfg.Gesture.ShortPressMs),
		cooldown:   config.Ms(cfg.Gesture.FireCooldownMs),
		swipe:      cfg.Gesture.SwipeDistance,
		slop:       cfg.Gesture.TapSlop,
		hitRadius:  cfg.Effects.HitRadius,
	}
}

// Process feeds a frame's events through Handle and collects the intents
func (g *GestureRecognizer) Process(s *state.GameState, events []PointerEvent) []Intent {
	var intents []Intent
	for _, ev := range events {
		if intent := g.Handle(s, ev); intent != nil {
			intents = append(intents, intent)
		}
	}
	return intents
}

// Handle applies one pointer event. It returns the intent the event
// resolved, or nil. Outside play every event is ignored and any press in
// progress is forgotten.
func (g *GestureRecognizer) Handle(s *state.GameState, ev PointerEvent) Intent {
	if !s.Simulating() {
		g.Reset()
		return nil
	}

	switch ev.Kind {
	case PointerDown:
		g.pressed = true
		g.startX, g.startY = ev.X, ev.Y
		g.startAt = ev.At
	case PointerMove:
		if g.pressed && g.swiped(ev) {
			return g.reload(s)
		}
	case PointerUp:
		if !g.pressed {
			return nil
		}
		if g.swiped(ev) {
			return g.reload(s)
		}
		g.pressed = false
		if ev.At-g.startAt >= g.shortPress {
			return nil
		}
		if math.Hypot(ev.X-g.startX, ev.Y-g.startY) >= g.slop {
			return nil
		}
		return g.shoot(s, ev)
	}
	return nil
}

// Reset forgets the press in progress. The cooldown survives so a reset
// cannot be used to fire faster.
func (g *GestureRecognizer) Reset() {
	g.pressed = false
}

// Pressed reports whether a press is being tracked
func (g *GestureRecognizer) Pressed() bool { return g.pressed }

func (g *GestureRecognizer) swiped(ev PointerEvent) bool {
	return g.startY-ev.Y > g.swipe
}

func (g *GestureRecognizer) reload(s *state.GameState) Intent {
	g.pressed = false
	return ReloadIntent{Reloaded: s.Reload()}
}

func (g *GestureRecognizer) shoot(s *state.GameState, ev PointerEvent) Intent {
	if g.shotBefore && ev.At-g.lastShotAt < g.cooldown {
		return nil
	}
	g.shotBefore = true
	g.lastShotAt = ev.At

	fired := s.Shoot()
	if fired {
		s.RegisterHit(ev.X, ev.Y, g.hitRadius)
	}
	return ShootIntent{X: ev.X, Y: ev.Y, Fired: fired}
}
