package entity

import "math"

// Rect is an axis-aligned rectangle in canvas pixels
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the centre point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// HitTest reports whether the circle (px, py, radius) touches r.
// The point is clamped to the nearest point on the rectangle and the
// distance to it compared against radius.
func HitTest(r Rect, px, py, radius float64) bool {
	nx := clamp(px, r.X, r.X+r.W)
	ny := clamp(py, r.Y, r.Y+r.H)
	dx := px - nx
	dy := py - ny
	return math.Sqrt(dx*dx+dy*dy) <= radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
