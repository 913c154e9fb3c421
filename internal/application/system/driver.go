package system

import (
	"time"

	"github.com/younwookim/gallery/internal/application/state"
)

// resetter is implemented by pointer pollers that track a held pointer
type resetter interface {
	Reset()
}

// FrameDriver runs one simulation step per Ebiten update: advance the
// clock, recognise gestures, spawn, tick the game state, and feed the
// resulting lifecycle events back to the spawner.
type FrameDriver struct {
	state   *state.GameState
	pointer PointerPoller
	gesture *GestureRecognizer
	spawner *Spawner

	step time.Duration
	now  time.Duration
}

// NewFrameDriver creates a driver that advances the clock by one frame
// period of framerate per Update
func NewFrameDriver(s *state.GameState, pointer PointerPoller, gesture *GestureRecognizer, spawner *Spawner, framerate int) *FrameDriver {
	if framerate <= 0 {
		framerate = 60
	}
	return &FrameDriver{
		state:   s,
		pointer: pointer,
		gesture: gesture,
		spawner: spawner,
		step:    time.Second / time.Duration(framerate),
		now:     s.Now(),
	}
}

// Update runs one frame and returns the intents the player's gestures
// resolved to
func (d *FrameDriver) Update() []Intent {
	d.now += d.step
	d.state.SetClock(d.now)

	intents := d.gesture.Process(d.state, d.pointer.Poll(d.now))
	d.spawner.Update(d.state)
	events := d.state.Tick(d.now)
	d.spawner.HandleEvents(d.state, events)

	return intents
}

// Reset returns the game to the title screen and clears input and spawn
// state. The clock keeps running.
func (d *FrameDriver) Reset() {
	d.state.Reset()
	if r, ok := d.pointer.(resetter); ok {
		r.Reset()
	}
	d.gesture.Reset()
	d.spawner.Reset()
}

// Now returns the game clock
func (d *FrameDriver) Now() time.Duration { return d.now }

// State returns the driven game state
func (d *FrameDriver) State() *state.GameState { return d.state }
