package state

import "time"

// HitMarker is the collision circle left by a shot
type HitMarker struct {
	X, Y      float64
	Radius    float64
	CreatedAt time.Duration
}

// AttackEffect is hostile gunfire: a circle that expands over Duration and
// costs the player one life once fully grown.
type AttackEffect struct {
	X, Y          float64
	CreatedAt     time.Duration
	Duration      time.Duration
	MaxRadius     float64
	DamageApplied bool
}

// Progress returns how far the expansion has got, in [0, 1]
func (e AttackEffect) Progress(now time.Duration) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(now-e.CreatedAt) / float64(e.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Radius returns the current radius of the effect
func (e AttackEffect) Radius(now time.Duration) float64 {
	return e.MaxRadius * e.Progress(now)
}

// Pulse is a UI flag that switches itself off at an expiry time.
// The zero value is inactive.
type Pulse struct {
	until time.Duration
	on    bool
}

// Start turns the pulse on for d starting at now, replacing any earlier run
func (p *Pulse) Start(now, d time.Duration) {
	p.on = true
	p.until = now + d
}

// Active reports whether the pulse is on at now
func (p Pulse) Active(now time.Duration) bool {
	return p.on && now < p.until
}

// Cancel switches the pulse off immediately
func (p *Pulse) Cancel() {
	*p = Pulse{}
}
