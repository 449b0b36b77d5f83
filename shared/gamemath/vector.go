package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Length returns the magnitude of v.
func Length(v math.Vec2) float64 {
	return stdmath.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func Normalize(v math.Vec2) math.Vec2 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return math.Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b math.Vec2) float64 {
	return stdmath.Hypot(b.X-a.X, b.Y-a.Y)
}

// Direction returns the unit vector pointing from a to b, or zero when they coincide.
func Direction(a, b math.Vec2) math.Vec2 {
	return Normalize(math.Vec2{X: b.X - a.X, Y: b.Y - a.Y})
}

// Scale multiplies v by s.
func Scale(v math.Vec2, s float64) math.Vec2 {
	return math.Vec2{X: v.X * s, Y: v.Y * s}
}

// Add returns a+b.
func Add(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// SampleSegment walks from a to b in steps of at most step pixels, both ends included,
// and stops as soon as visit returns true. It reports whether any visit returned true.
func SampleSegment(a, b math.Vec2, step float64, visit func(p math.Vec2) bool) bool {
	if step <= 0 {
		step = 1
	}
	dist := Distance(a, b)
	n := int(stdmath.Ceil(dist / step))
	if n == 0 {
		return visit(a)
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		p := math.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		if visit(p) {
			return true
		}
	}
	return false
}
