package system

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/gallery/internal/application/state"
	"github.com/younwookim/gallery/internal/domain/entity"
	"github.com/younwookim/gallery/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newPlayingState() *state.GameState {
	s := state.New(config.DefaultTuning(), testRNG())
	s.SetLogger(quietLogger())
	s.Start()
	s.Next()
	return s
}

func newTestSpawner(cfg *config.SpawnConfig) *Spawner {
	sp := NewSpawner(cfg, BehaviorFromTuning(config.DefaultTuning()), testRNG())
	sp.SetLogger(quietLogger())
	return sp
}

// stillBehavior never pauses, so NPCs stay where tests put them
func stillBehavior() entity.Behavior {
	b := entity.DefaultBehavior()
	b.PauseChance = 0
	return b
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func down(x, y float64, at int) PointerEvent {
	return PointerEvent{Kind: PointerDown, X: x, Y: y, At: ms(at)}
}

func move(x, y float64, at int) PointerEvent {
	return PointerEvent{Kind: PointerMove, X: x, Y: y, At: ms(at)}
}

func up(x, y float64, at int) PointerEvent {
	return PointerEvent{Kind: PointerUp, X: x, Y: y, At: ms(at)}
}
