package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func newTestHostile(x float64, now time.Duration) *NPC {
	s := testSpawn(x, 1)
	s.Speed = 0
	return NewHostile(s, stillBehavior(), now, testRNG())
}

func TestNewHostile_SchedulesSpawnShot(t *testing.T) {
	h := newTestHostile(100, time.Second)

	assert.Equal(t, KindHostile, h.Kind)
	assert.GreaterOrEqual(t, h.Attack.NextAttackAt, 3*time.Second)
	assert.LessOrEqual(t, h.Attack.NextAttackAt, 6*time.Second)
	assert.Equal(t, h.Attack.NextAttackAt-750*time.Millisecond, h.Attack.TelegraphStartsAt)
	assert.False(t, h.Attack.FirstShotScheduled)
	assert.Equal(t, AttackIdle, h.Attack.Phase)
}

func TestHostile_ReschedulesOnceVisible(t *testing.T) {
	rng := testRNG()

	t.Run("off screen keeps waiting", func(t *testing.T) {
		h := newTestHostile(-10, 0)

		h.Update(10*time.Second, rng)

		assert.False(t, h.Attack.FirstShotScheduled)
		assert.Equal(t, AttackIdle, h.Attack.Phase)
	})

	t.Run("first on-screen tick schedules 2-3s ahead", func(t *testing.T) {
		h := newTestHostile(100, 0)

		h.Update(10*time.Second, rng)

		require.True(t, h.Attack.FirstShotScheduled)
		assert.GreaterOrEqual(t, h.Attack.NextAttackAt, 12*time.Second)
		assert.LessOrEqual(t, h.Attack.NextAttackAt, 13*time.Second)
	})
}

// runUntilFired ticks the hostile until it fires and returns the fire time
func runUntilFired(t *testing.T, h *NPC, start time.Duration) (time.Duration, Event, time.Duration) {
	t.Helper()
	rng := testRNG()
	telegraphAt := time.Duration(-1)
	for now := start; now < start+time.Minute; now += frame {
		ev := h.Update(now, rng)
		if telegraphAt < 0 && h.Telegraphing() {
			telegraphAt = now
		}
		if ev.Kind == EventFired {
			return now, ev, telegraphAt
		}
	}
	t.Fatal("hostile never fired")
	return 0, Event{}, 0
}

func TestHostile_FiresAfterTelegraph(t *testing.T) {
	h := newTestHostile(100, 0)
	h.Update(0, testRNG())
	require.True(t, h.Attack.FirstShotScheduled)

	telegraphStart := h.Attack.TelegraphStartsAt
	nextAttack := h.Attack.NextAttackAt

	firedAt, ev, telegraphAt := runUntilFired(t, h, frame)

	assert.GreaterOrEqual(t, telegraphAt, telegraphStart)
	assert.Greater(t, firedAt, telegraphAt, "fire happens strictly after telegraph starts")
	assert.Greater(t, firedAt, nextAttack, "fire happens strictly after the scheduled time")

	assert.Equal(t, 125.0, ev.X, "event carries the hostile's centre")
	assert.Equal(t, 125.0, ev.Y)
	assert.Same(t, h, ev.Source)

	// Next cycle is rearmed
	assert.Equal(t, AttackIdle, h.Attack.Phase)
	assert.GreaterOrEqual(t, h.Attack.NextAttackAt, firedAt+time.Second)
	assert.LessOrEqual(t, h.Attack.NextAttackAt, firedAt+3*time.Second)
	assert.Equal(t, h.Attack.NextAttackAt-750*time.Millisecond, h.Attack.TelegraphStartsAt)
}

func TestHostile_FiresWhilePaused(t *testing.T) {
	h := newTestHostile(100, 0)
	h.Update(0, testRNG())
	h.Paused = true
	h.ResumeAt = time.Hour

	firedAt, _, _ := runUntilFired(t, h, frame)

	assert.Greater(t, firedAt, time.Duration(0))
	assert.True(t, h.Paused)
}

func TestHostile_Flash(t *testing.T) {
	h := newTestHostile(100, 0)
	h.Attack.FirstShotScheduled = true
	h.Attack.schedule(0, time.Second, 750*time.Millisecond)

	assert.False(t, h.FlashOn(300*time.Millisecond), "no flash before telegraph")

	h.Update(250*time.Millisecond, testRNG())
	require.True(t, h.Telegraphing())

	assert.True(t, h.FlashOn(250*time.Millisecond))
	assert.False(t, h.FlashOn(375*time.Millisecond))
	assert.True(t, h.FlashOn(500*time.Millisecond))
}

func TestHostile_BoostAttack(t *testing.T) {
	h := newTestHostile(100, 0)

	h.BoostAttack(0.5)

	assert.Equal(t, 500*time.Millisecond, h.Attack.IntervalMin)
	assert.Equal(t, 1500*time.Millisecond, h.Attack.IntervalMax)
}

func TestNeutral_NeverFires(t *testing.T) {
	rng := testRNG()
	s := testSpawn(100, 1)
	s.Speed = 0
	n := NewNeutral(s, stillBehavior(), 0)

	for now := time.Duration(0); now < 20*time.Second; now += frame {
		ev := n.Update(now, rng)
		assert.NotEqual(t, EventFired, ev.Kind)
	}
	assert.False(t, n.Telegraphing())
}
