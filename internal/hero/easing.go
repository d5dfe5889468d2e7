package hero

import "math"

// CubicBezier is a CSS-style timing function through (0,0), (X1,Y1),
// (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Headline easing of the hero title lines.
var EaseHeadline = CubicBezier{0.25, 0.1, 0.25, 1.0}

// EaseStandard is the page-wide microinteraction curve.
var EaseStandard = CubicBezier{0.25, 0.46, 0.45, 0.94}

func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// At maps progress x in [0,1] to eased progress.
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// Newton first, bisection when the slope is too flat
	t := x
	for i := 0; i < 8; i++ {
		dx := bezier(t, c.X1, c.X2) - x
		if math.Abs(dx) < 1e-7 {
			return bezier(t, c.Y1, c.Y2)
		}
		d := bezierSlope(t, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 40; i++ {
		v := bezier(t, c.X1, c.X2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezier(t, c.Y1, c.Y2)
}

// EaseInOut is a symmetric sine ease used for pulsing glows.
func EaseInOut(x float64) float64 {
	return -(math.Cos(math.Pi*clamp01(x)) - 1) / 2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
