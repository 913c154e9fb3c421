package entity

import (
	"math/rand"
	"time"
)

// Spawn holds the construction parameters chosen by the spawner
type Spawn struct {
	Rect
	Speed      float64 // Pixels per tick
	Direction  int     // +1 right, -1 left
	FieldWidth float64
	CanPause   bool
}

// NPC is a non-player character. Kind selects which behavior Update runs;
// the variant-specific fields are ignored for other kinds.
type NPC struct {
	Kind Kind
	Rect
	Alive     bool
	HP        int
	Direction int
	Speed     float64
	CanPause  bool

	// Pause state
	Paused   bool
	PausedAt time.Duration
	ResumeAt time.Duration

	ExitedField bool
	FieldWidth  float64
	CreatedAt   time.Duration
	Behavior    Behavior

	// Hostile
	Attack Attack

	// Ambiguous
	TransformAt time.Duration
	Transformed bool

	// Pickup
	Lifespan time.Duration
}

func newNPC(kind Kind, s Spawn, b Behavior, now time.Duration) *NPC {
	dir := s.Direction
	if dir == 0 {
		dir = 1
	}
	return &NPC{
		Kind:       kind,
		Rect:       s.Rect,
		Alive:      true,
		HP:         1,
		Direction:  dir,
		Speed:      s.Speed,
		CanPause:   s.CanPause,
		FieldWidth: s.FieldWidth,
		CreatedAt:  now,
		Behavior:   b,
	}
}

// NewHostile creates a hostile NPC and schedules its spawn-time attack
func NewHostile(s Spawn, b Behavior, now time.Duration, rng *rand.Rand) *NPC {
	n := newNPC(KindHostile, s, b, now)
	n.Attack.IntervalMin = b.AttackMin
	n.Attack.IntervalMax = b.AttackMax
	n.Attack.schedule(now, randDuration(rng, b.SpawnShotMin, b.SpawnShotMax), b.TelegraphLead)
	return n
}

// NewNeutral creates a neutral NPC
func NewNeutral(s Spawn, b Behavior, now time.Duration) *NPC {
	return newNPC(KindNeutral, s, b, now)
}

// NewAmbiguous creates an NPC whose type resolves after it pauses
func NewAmbiguous(s Spawn, b Behavior, now time.Duration) *NPC {
	return newNPC(KindAmbiguous, s, b, now)
}

// NewPickup creates a stationary life pickup
func NewPickup(r Rect, b Behavior, now time.Duration) *NPC {
	n := newNPC(KindPickup, Spawn{Rect: r}, b, now)
	n.Speed = 0
	n.Lifespan = b.PickupLifespan
	return n
}

// Pose returns the current position and heading
func (n *NPC) Pose() Pose {
	return Pose{Rect: n.Rect, Direction: n.Direction, Speed: n.Speed}
}

// OnScreen reports whether the NPC lies entirely inside the field
func (n *NPC) OnScreen() bool {
	return n.X >= 0 && n.X+n.W <= n.FieldWidth
}

// TakeDamage applies damage and returns true if the NPC died
func (n *NPC) TakeDamage(damage int) bool {
	n.HP -= damage
	if n.HP <= 0 {
		n.Alive = false
	}
	return !n.Alive
}

// Update advances the NPC by one tick
func (n *NPC) Update(now time.Duration, rng *rand.Rand) Event {
	if !n.Alive {
		return Event{}
	}

	switch n.Kind {
	case KindPickup:
		return n.updatePickup(now)
	case KindAmbiguous:
		if n.Paused && now >= n.TransformAt {
			n.Transformed = true
			n.Alive = false
			return n.event(EventTransformed)
		}
	}

	n.move(now, rng)

	if n.checkExit() {
		return n.event(EventExited)
	}

	if n.Kind == KindHostile {
		return n.updateAttack(now, rng)
	}
	return Event{}
}

// move runs the Moving <-> Paused state machine and steps position
func (n *NPC) move(now time.Duration, rng *rand.Rand) {
	b := &n.Behavior

	if n.Paused {
		if now < n.ResumeAt {
			return
		}
		n.Paused = false
		if b.ReverseOnResume && rng.Float64() < b.ReverseChance {
			n.Direction = -n.Direction
		}
	} else if n.CanPause && rng.Float64() < b.PauseChance {
		n.Paused = true
		n.PausedAt = now
		n.ResumeAt = now + randDuration(rng, b.PauseMin, b.PauseMax)
		if n.Kind == KindAmbiguous {
			n.TransformAt = now + b.TransformDelay
		}
		return
	}

	n.X += n.Speed * float64(n.Direction)
}

// checkExit marks the NPC dead once it has fully left the field on the
// side it is heading towards
func (n *NPC) checkExit() bool {
	gone := (n.Direction > 0 && n.X > n.FieldWidth) || (n.Direction < 0 && n.X+n.W < 0)
	if gone {
		n.Alive = false
		n.ExitedField = true
	}
	return gone
}

func (n *NPC) updatePickup(now time.Duration) Event {
	if now-n.CreatedAt > n.Lifespan {
		n.Alive = false
		return n.event(EventExpired)
	}
	return Event{}
}

func (n *NPC) event(kind EventKind) Event {
	cx, cy := n.Center()
	return Event{Kind: kind, Source: n, X: cx, Y: cy, Pose: n.Pose()}
}

// randDuration returns a uniform duration in [lo, hi]
func randDuration(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Int63n(int64(hi-lo)+1))
}
