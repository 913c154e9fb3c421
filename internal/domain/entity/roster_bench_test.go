package entity

import (
	"math/rand"
	"testing"
	"time"
)

const benchRosterSize = 1000

func benchRoster() Roster {
	rng := rand.New(rand.NewSource(1))
	b := DefaultBehavior()
	r := make(Roster, 0, benchRosterSize)
	for i := 0; i < benchRosterSize; i++ {
		s := Spawn{
			Rect:       Rect{X: float64(i % 400), Y: float64(i % 600), W: 50, H: 50},
			Speed:      2,
			Direction:  1,
			FieldWidth: 1e9,
			CanPause:   i%3 == 0,
		}
		switch i % 3 {
		case 0:
			r = append(r, NewHostile(s, b, 0, rng))
		case 1:
			r = append(r, NewNeutral(s, b, 0))
		default:
			r = append(r, NewAmbiguous(s, b, 0))
		}
	}
	return r
}

func BenchmarkRoster_Update(b *testing.B) {
	r := benchRoster()
	rng := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		now := time.Duration(n) * 16 * time.Millisecond
		for _, npc := range r {
			npc.Update(now, rng)
		}
	}
}

func BenchmarkRoster_HitTest(b *testing.B) {
	r := benchRoster()
	b.ResetTimer()
	var hits int
	for n := 0; n < b.N; n++ {
		hits = 0
		for _, npc := range r {
			if HitTest(npc.Rect, 200, 300, 25) {
				hits++
			}
		}
	}
	_ = hits
}

func BenchmarkRoster_Compact(b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		r := benchRoster()
		for i := 0; i < len(r); i += 2 {
			r[i].Alive = false
		}
		b.StartTimer()
		_ = r.Compact()
	}
}
