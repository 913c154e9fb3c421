package system

import (
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/gallery/internal/application/state"
	"github.com/younwookim/gallery/internal/domain/entity"
	"github.com/younwookim/gallery/internal/infrastructure/config"
)

// BehaviorFromTuning builds the NPC timing table from tuning values
func BehaviorFromTuning(cfg *config.TuningConfig) entity.Behavior {
	m, a, l := cfg.Movement, cfg.Attack, cfg.Lifetime
	return entity.Behavior{
		PauseChance:     m.PauseChance,
		PauseMin:        config.Ms(m.PauseMinMs),
		PauseMax:        config.Ms(m.PauseMaxMs),
		ReverseOnResume: m.ReverseOnResume,
		ReverseChance:   m.ReverseChance,
		SpawnShotMin:    config.Ms(a.SpawnShotMinMs),
		SpawnShotMax:    config.Ms(a.SpawnShotMaxMs),
		FirstShotMin:    config.Ms(a.FirstShotMinMs),
		FirstShotMax:    config.Ms(a.FirstShotMaxMs),
		AttackMin:       config.Ms(a.IntervalMinMs),
		AttackMax:       config.Ms(a.IntervalMaxMs),
		TelegraphLead:   config.Ms(a.TelegraphLeadMs),
		FlashPeriod:     config.Ms(a.FlashPeriodMs),
		TransformDelay:  config.Ms(l.TransformDelayMs),
		PickupLifespan:  config.Ms(l.PickupLifespanMs),
	}
}

// Spawner populates the field from the spawn table and reacts to NPC
// lifecycle events: ambiguous NPCs resolve into a hostile or neutral, and
// neutrals that walk off unharmed may leave a life pickup behind.
type Spawner struct {
	cfg      *config.SpawnConfig
	behavior entity.Behavior
	rng      *rand.Rand
	logger   *log.Logger

	scheduled bool
	nextAt    time.Duration
}

// NewSpawner creates a new spawner
func NewSpawner(spawns *config.SpawnConfig, behavior entity.Behavior, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:      spawns,
		behavior: behavior,
		rng:      rng,
		logger:   log.Default(),
	}
}

// SetLogger replaces the logger used for spawn events
func (sp *Spawner) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	sp.logger = l
}

// Reset drops the pending spawn schedule
func (sp *Spawner) Reset() {
	sp.scheduled = false
	sp.nextAt = 0
}

// NextSpawnAt returns when the next spawn is due, if one is scheduled
func (sp *Spawner) NextSpawnAt() (time.Duration, bool) {
	return sp.nextAt, sp.scheduled
}

// Update spawns at most one NPC once the level's interval has elapsed.
// The first call after a reset only starts the schedule. When the field
// already holds MaxAlive NPCs the spawn is skipped, not queued.
func (sp *Spawner) Update(s *state.GameState) *entity.NPC {
	if !s.Simulating() {
		return nil
	}

	now := s.Now()
	if !sp.scheduled {
		sp.scheduled = true
		sp.nextAt = now + sp.interval(s)
		return nil
	}
	if now < sp.nextAt {
		return nil
	}
	sp.nextAt = now + sp.interval(s)

	if alive(s) >= sp.cfg.MaxAlive {
		return nil
	}
	return sp.Spawn(s, sp.pickKind())
}

// Spawn places a new NPC of kind just outside the left or right edge
func (sp *Spawner) Spawn(s *state.GameState, kind entity.Kind) *entity.NPC {
	fieldW, fieldH := s.FieldSize()
	w, h := sp.cfg.Size.Width, sp.cfg.Size.Height

	dir := 1
	x := -w
	if sp.rng.Intn(2) == 0 {
		dir = -1
		x = fieldW
	}

	spawn := entity.Spawn{
		Rect:       entity.Rect{X: x, Y: fieldH * sp.uniform(sp.cfg.Lane), W: w, H: h},
		Speed:      sp.uniform(sp.cfg.Speed),
		Direction:  dir,
		FieldWidth: fieldW,
		CanPause:   kind == entity.KindAmbiguous || sp.rng.Float64() < sp.cfg.CanPause,
	}

	var n *entity.NPC
	switch kind {
	case entity.KindHostile:
		n = entity.NewHostile(spawn, sp.behavior, s.Now(), sp.rng)
	case entity.KindAmbiguous:
		n = entity.NewAmbiguous(spawn, sp.behavior, s.Now())
	default:
		n = entity.NewNeutral(spawn, sp.behavior, s.Now())
	}
	s.Add(n)

	sp.logger.Printf("[Spawner] %s at (%.0f, %.0f) heading %+d", n.Kind, n.X, n.Y, n.Direction)
	return n
}

// HandleEvents reacts to the lifecycle events returned by GameState.Tick
func (sp *Spawner) HandleEvents(s *state.GameState, events []entity.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case entity.EventTransformed:
			sp.resolve(s, ev)
		case entity.EventExited:
			if ev.Source != nil && ev.Source.Kind == entity.KindNeutral && sp.rng.Float64() < sp.cfg.Pickup.Chance {
				sp.dropPickup(s, ev.Pose)
			}
		}
	}
}

// resolve replaces a transformed ambiguous NPC with a hostile or neutral
// at the same pose
func (sp *Spawner) resolve(s *state.GameState, ev entity.Event) {
	fieldW, _ := s.FieldSize()
	spawn := entity.Spawn{
		Rect:       ev.Pose.Rect,
		Speed:      ev.Pose.Speed,
		Direction:  ev.Pose.Direction,
		FieldWidth: fieldW,
		CanPause:   ev.Source != nil && ev.Source.CanPause,
	}

	var n *entity.NPC
	if sp.rng.Float64() < sp.cfg.Ambiguous.HostileChance {
		spawn.Speed *= sp.cfg.Ambiguous.SpeedBoost
		n = entity.NewHostile(spawn, sp.behavior, s.Now(), sp.rng)
		n.BoostAttack(sp.cfg.Ambiguous.ReloadBoost)
	} else {
		n = entity.NewNeutral(spawn, sp.behavior, s.Now())
	}
	s.Add(n)

	sp.logger.Printf("[Spawner] Ambiguous resolved to %s at (%.0f, %.0f)", n.Kind, n.X, n.Y)
}

// dropPickup leaves a pickup inside the field where a neutral walked off
func (sp *Spawner) dropPickup(s *state.GameState, pose entity.Pose) {
	fieldW, _ := s.FieldSize()
	pw, ph := sp.cfg.Pickup.Width, sp.cfg.Pickup.Height

	x := pose.X
	if x < 0 {
		x = 0
	}
	if x > fieldW-pw {
		x = fieldW - pw
	}
	r := entity.Rect{X: x, Y: pose.Y + (pose.H-ph)/2, W: pw, H: ph}

	n := entity.NewPickup(r, sp.behavior, s.Now())
	s.Add(n)

	sp.logger.Printf("[Spawner] Pickup dropped at (%.0f, %.0f)", n.X, n.Y)
}

func (sp *Spawner) interval(s *state.GameState) time.Duration {
	return config.Ms(sp.cfg.IntervalFor(s.Level()))
}

func (sp *Spawner) pickKind() entity.Kind {
	w := sp.cfg.Weights
	r := sp.rng.Intn(w.Hostile + w.Neutral + w.Ambiguous)
	switch {
	case r < w.Hostile:
		return entity.KindHostile
	case r < w.Hostile+w.Neutral:
		return entity.KindNeutral
	default:
		return entity.KindAmbiguous
	}
}

func (sp *Spawner) uniform(r config.RangeConfig) float64 {
	return r.Min + sp.rng.Float64()*(r.Max-r.Min)
}

// alive counts the NPCs that take up a spawn slot; pickups do not
func alive(s *state.GameState) int {
	return len(s.Hostiles()) + len(s.Neutrals()) + len(s.Ambiguous())
}
