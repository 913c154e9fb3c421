package entity

import (
	"math/rand"
	"time"
)

// AttackPhase is the state of a hostile's attack cycle
type AttackPhase int

const (
	AttackIdle AttackPhase = iota
	AttackTelegraphing
)

// Attack is the hostile attack timer.
//
// Idle -> Telegraphing once now reaches TelegraphStartsAt, and
// Telegraphing -> Idle when the shot fires after NextAttackAt. Firing is
// independent of the movement pause.
type Attack struct {
	Phase              AttackPhase
	NextAttackAt       time.Duration
	TelegraphStartsAt  time.Duration
	FirstShotScheduled bool

	IntervalMin time.Duration
	IntervalMax time.Duration
}

func (a *Attack) schedule(now, delay, lead time.Duration) {
	a.NextAttackAt = now + delay
	a.TelegraphStartsAt = a.NextAttackAt - lead
}

// Telegraphing reports whether the pre-attack warning is showing
func (n *NPC) Telegraphing() bool {
	return n.Kind == KindHostile && n.Attack.Phase == AttackTelegraphing
}

// FlashOn returns which half of the telegraph flash is visible at now
func (n *NPC) FlashOn(now time.Duration) bool {
	if !n.Telegraphing() || n.Behavior.FlashPeriod <= 0 {
		return false
	}
	step := (now - n.Attack.TelegraphStartsAt) / n.Behavior.FlashPeriod
	return step%2 == 0
}

// BoostAttack shortens the interval between shots by factor
func (n *NPC) BoostAttack(factor float64) {
	n.Attack.IntervalMin = time.Duration(float64(n.Attack.IntervalMin) * factor)
	n.Attack.IntervalMax = time.Duration(float64(n.Attack.IntervalMax) * factor)
}

func (n *NPC) updateAttack(now time.Duration, rng *rand.Rand) Event {
	a := &n.Attack
	b := &n.Behavior

	if !a.FirstShotScheduled {
		// The spawn-time schedule only holds until the hostile is visible
		if !n.OnScreen() {
			return Event{}
		}
		a.schedule(now, randDuration(rng, b.FirstShotMin, b.FirstShotMax), b.TelegraphLead)
		a.FirstShotScheduled = true
		return Event{}
	}

	switch a.Phase {
	case AttackIdle:
		if now >= a.TelegraphStartsAt {
			a.Phase = AttackTelegraphing
		}
	case AttackTelegraphing:
		if now > a.NextAttackAt {
			a.Phase = AttackIdle
			a.schedule(now, randDuration(rng, a.IntervalMin, a.IntervalMax), b.TelegraphLead)
			return n.event(EventFired)
		}
	}
	return Event{}
}
