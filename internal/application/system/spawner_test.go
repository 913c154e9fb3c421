package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gallery/internal/application/state"
	"github.com/younwookim/gallery/internal/domain/entity"
	"github.com/younwookim/gallery/internal/infrastructure/config"
)

func TestBehaviorFromTuning(t *testing.T) {
	assert.Equal(t, entity.DefaultBehavior(), BehaviorFromTuning(config.DefaultTuning()))
}

func TestSpawner_Schedule(t *testing.T) {
	s := newPlayingState()
	sp := newTestSpawner(config.DefaultSpawns())

	s.SetClock(0)
	assert.Nil(t, sp.Update(s), "first call only schedules")
	next, ok := sp.NextSpawnAt()
	require.True(t, ok)
	assert.Equal(t, ms(1800), next)

	s.SetClock(ms(1799))
	assert.Nil(t, sp.Update(s))

	s.SetClock(ms(1800))
	n := sp.Update(s)
	require.NotNil(t, n)
	assert.Equal(t, 1, alive(s))
	next, _ = sp.NextSpawnAt()
	assert.Equal(t, ms(3600), next)
}

func TestSpawner_IntervalFollowsLevel(t *testing.T) {
	s := newPlayingState()
	s.AddScore(50)
	require.Equal(t, 2, s.Level())
	sp := newTestSpawner(config.DefaultSpawns())

	s.SetClock(ms(100))
	sp.Update(s)

	next, _ := sp.NextSpawnAt()
	assert.Equal(t, ms(1600), next)
}

func TestSpawner_IdleOutsidePlay(t *testing.T) {
	s := state.New(config.DefaultTuning(), testRNG())
	sp := newTestSpawner(config.DefaultSpawns())

	for now := time.Duration(0); now < 5*time.Second; now += ms(100) {
		s.SetClock(now)
		assert.Nil(t, sp.Update(s))
	}

	_, ok := sp.NextSpawnAt()
	assert.False(t, ok)
	assert.Equal(t, 0, alive(s))
}

func TestSpawner_MaxAlive(t *testing.T) {
	s := newPlayingState()
	cfg := config.DefaultSpawns()
	cfg.MaxAlive = 1
	sp := newTestSpawner(cfg)

	s.SetClock(0)
	sp.Update(s)
	s.SetClock(ms(1800))
	require.NotNil(t, sp.Update(s))

	s.SetClock(ms(3600))
	assert.Nil(t, sp.Update(s), "field is full")
	next, _ := sp.NextSpawnAt()
	assert.Equal(t, ms(5400), next, "skipped spawns are not queued")

	// Pickups do not take a slot
	s.AddPickup(entity.NewPickup(entity.Rect{W: 10, H: 10}, stillBehavior(), ms(3600)))
	assert.Equal(t, 1, alive(s))
}

func TestSpawner_Spawn(t *testing.T) {
	kinds := []entity.Kind{entity.KindHostile, entity.KindNeutral, entity.KindAmbiguous}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newPlayingState()
			sp := newTestSpawner(config.DefaultSpawns())
			sawLeft, sawRight := false, false

			for i := 0; i < 50; i++ {
				n := sp.Spawn(s, kind)

				assert.Equal(t, kind, n.Kind)
				assert.True(t, n.Alive)
				assert.Equal(t, 50.0, n.W)
				assert.Equal(t, 50.0, n.H)
				assert.Equal(t, 400.0, n.FieldWidth)
				assert.GreaterOrEqual(t, n.Y, 64.0)
				assert.LessOrEqual(t, n.Y, 480.0)
				assert.GreaterOrEqual(t, n.Speed, 1.5)
				assert.LessOrEqual(t, n.Speed, 3.0)

				switch n.Direction {
				case 1:
					sawLeft = true
					assert.Equal(t, -50.0, n.X, "enters from the left edge")
				case -1:
					sawRight = true
					assert.Equal(t, 400.0, n.X, "enters from the right edge")
				default:
					t.Fatalf("unexpected direction %d", n.Direction)
				}
				if kind == entity.KindAmbiguous {
					assert.True(t, n.CanPause, "ambiguous NPCs must be able to pause")
				}
			}

			assert.True(t, sawLeft)
			assert.True(t, sawRight)
			assert.Equal(t, 50, alive(s))
		})
	}
}

func TestSpawner_PickKind(t *testing.T) {
	tests := []struct {
		name    string
		weights config.KindWeights
		want    entity.Kind
	}{
		{"only hostile", config.KindWeights{Hostile: 1}, entity.KindHostile},
		{"only neutral", config.KindWeights{Neutral: 3}, entity.KindNeutral},
		{"only ambiguous", config.KindWeights{Ambiguous: 2}, entity.KindAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSpawns()
			cfg.Weights = tt.weights
			sp := newTestSpawner(cfg)

			for i := 0; i < 20; i++ {
				assert.Equal(t, tt.want, sp.pickKind())
			}
		})
	}

	t.Run("mixed weights reach every kind", func(t *testing.T) {
		sp := newTestSpawner(config.DefaultSpawns())
		seen := map[entity.Kind]int{}
		for i := 0; i < 500; i++ {
			seen[sp.pickKind()]++
		}
		assert.Len(t, seen, 3)
		assert.Greater(t, seen[entity.KindHostile], seen[entity.KindAmbiguous])
	})
}

func transformEvent(x, y float64, dir int) entity.Event {
	n := entity.NewAmbiguous(entity.Spawn{
		Rect:       entity.Rect{X: x, Y: y, W: 50, H: 50},
		Speed:      2,
		Direction:  dir,
		FieldWidth: 400,
		CanPause:   true,
	}, stillBehavior(), 0)
	n.Alive = false
	n.Transformed = true
	return entity.Event{Kind: entity.EventTransformed, Source: n, X: x + 25, Y: y + 25, Pose: n.Pose()}
}

func TestSpawner_ResolveAmbiguous(t *testing.T) {
	t.Run("hostile", func(t *testing.T) {
		s := newPlayingState()
		cfg := config.DefaultSpawns()
		cfg.Ambiguous.HostileChance = 1
		sp := newTestSpawner(cfg)

		sp.HandleEvents(s, []entity.Event{transformEvent(120, 200, -1)})

		require.Len(t, s.Hostiles(), 1)
		h := s.Hostiles()[0]
		assert.Equal(t, 120.0, h.X)
		assert.Equal(t, 200.0, h.Y)
		assert.Equal(t, -1, h.Direction)
		assert.InDelta(t, 3.0, h.Speed, 1e-9, "speed boosted")
		assert.InDelta(t, float64(ms(600)), float64(h.Attack.IntervalMin), 1, "reload boosted")
		assert.InDelta(t, float64(ms(1800)), float64(h.Attack.IntervalMax), 1)
		assert.True(t, h.CanPause)
		assert.Empty(t, s.Neutrals())
	})

	t.Run("neutral", func(t *testing.T) {
		s := newPlayingState()
		cfg := config.DefaultSpawns()
		cfg.Ambiguous.HostileChance = 0
		sp := newTestSpawner(cfg)

		sp.HandleEvents(s, []entity.Event{transformEvent(120, 200, 1)})

		require.Len(t, s.Neutrals(), 1)
		n := s.Neutrals()[0]
		assert.Equal(t, 120.0, n.X)
		assert.Equal(t, 2.0, n.Speed)
		assert.Equal(t, 1, n.Direction)
		assert.Empty(t, s.Hostiles())
	})
}

func exitEvent(kind entity.Kind, x float64, dir int) entity.Event {
	n := &entity.NPC{Kind: kind, Rect: entity.Rect{X: x, Y: 100, W: 50, H: 50}, Direction: dir, Speed: 2, FieldWidth: 400, ExitedField: true}
	return entity.Event{Kind: entity.EventExited, Source: n, Pose: n.Pose()}
}

func TestSpawner_PickupDrop(t *testing.T) {
	tests := []struct {
		name   string
		kind   entity.Kind
		chance float64
		x      float64
		dir    int
		wantX  float64
		drops  bool
	}{
		{"neutral exits right", entity.KindNeutral, 1, 401, 1, 370, true},
		{"neutral exits left", entity.KindNeutral, 1, -51, -1, 0, true},
		{"chance zero", entity.KindNeutral, 0, 401, 1, 0, false},
		{"hostile never drops", entity.KindHostile, 1, 401, 1, 0, false},
		{"ambiguous never drops", entity.KindAmbiguous, 1, -51, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPlayingState()
			cfg := config.DefaultSpawns()
			cfg.Pickup.Chance = tt.chance
			sp := newTestSpawner(cfg)

			sp.HandleEvents(s, []entity.Event{exitEvent(tt.kind, tt.x, tt.dir)})

			if !tt.drops {
				assert.Empty(t, s.Pickups())
				return
			}
			require.Len(t, s.Pickups(), 1)
			p := s.Pickups()[0]
			assert.Equal(t, entity.KindPickup, p.Kind)
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, 110.0, p.Y, "centred on the lane")
			assert.Equal(t, 30.0, p.W)
			assert.Equal(t, 3*time.Second, p.Lifespan)
		})
	}
}

func TestSpawner_Reset(t *testing.T) {
	s := newPlayingState()
	sp := newTestSpawner(config.DefaultSpawns())
	s.SetClock(0)
	sp.Update(s)

	sp.Reset()

	_, ok := sp.NextSpawnAt()
	assert.False(t, ok)
}
