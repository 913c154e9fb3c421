package entity

import "time"

// Kind tags the variant of an NPC
type Kind int

const (
	KindHostile Kind = iota
	KindNeutral
	KindAmbiguous
	KindPickup
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindHostile:
		return "Hostile"
	case KindNeutral:
		return "Neutral"
	case KindAmbiguous:
		return "Ambiguous"
	case KindPickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// EventKind identifies what happened to an NPC during Update
type EventKind int

const (
	EventNone EventKind = iota
	EventFired
	EventTransformed
	EventExited
	EventExpired
)

// Event is returned by NPC.Update. Cross-entity consequences (damage,
// spawning replacements) are decided by the caller, never by the NPC.
type Event struct {
	Kind   EventKind
	Source *NPC
	// X, Y is the centre of the source at the time of the event
	X, Y float64
	Pose Pose
}

// Pose is the position and heading an NPC had when it emitted an event
type Pose struct {
	Rect
	Direction int
	Speed     float64
}

// Behavior holds the per-NPC tunables for movement, attacks and lifetimes
type Behavior struct {
	PauseChance     float64 // Per-tick probability of pausing
	PauseMin        time.Duration
	PauseMax        time.Duration
	ReverseOnResume bool
	ReverseChance   float64

	SpawnShotMin  time.Duration // First schedule, set at construction
	SpawnShotMax  time.Duration
	FirstShotMin  time.Duration // Rescheduled once fully on screen
	FirstShotMax  time.Duration
	AttackMin     time.Duration // Interval between subsequent shots
	AttackMax     time.Duration
	TelegraphLead time.Duration
	FlashPeriod   time.Duration

	TransformDelay time.Duration
	PickupLifespan time.Duration
}

// DefaultBehavior returns the stock gallery tuning
func DefaultBehavior() Behavior {
	return Behavior{
		PauseChance:     0.005,
		PauseMin:        1 * time.Second,
		PauseMax:        2 * time.Second,
		ReverseOnResume: true,
		ReverseChance:   0.4,
		SpawnShotMin:    2 * time.Second,
		SpawnShotMax:    5 * time.Second,
		FirstShotMin:    2 * time.Second,
		FirstShotMax:    3 * time.Second,
		AttackMin:       1 * time.Second,
		AttackMax:       3 * time.Second,
		TelegraphLead:   750 * time.Millisecond,
		FlashPeriod:     125 * time.Millisecond,
		TransformDelay:  1 * time.Second,
		PickupLifespan:  3 * time.Second,
	}
}
