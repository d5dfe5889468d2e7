package particles

import (
	"image/color"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Len() float64    { return math.Hypot(v.X, v.Y) }

// Particle is a point moving at constant velocity. Vel, Radius and Color
// are fixed at creation; only Pos changes.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Color  color.NRGBA
}

// wrap maps v into [0, max). A value leaving one edge re-enters at the
// opposite one.
func wrap(v, max float64) float64 {
	if v >= 0 && v < max {
		return v
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	// v+max can round up to max for tiny negative v
	if v >= max {
		v = 0
	}
	return v
}
