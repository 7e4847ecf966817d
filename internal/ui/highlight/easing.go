package highlight

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/capsule/internal/config"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// EaseInOut is the standard ease-in/ease-out curve, cubic Bézier (0.42, 0, 0.58, 1).
var EaseInOut = CubicBezier(0.42, 0, 0.58, 1)

// Linear performs no easing.
func Linear(t float64) float64 {
	return min(max(t, 0), 1)
}

// Spring parameters used by the "spring" easing.
const (
	SpringFrequency = 9.0
	SpringDamping   = 0.65
)

// springSteps is the number of samples taken over a slide.
const springSteps = 240

// Spring returns an easing that follows a damped spring released at 0 with
// its rest point at 1, over one unit of time. frequency is in radians per
// slide duration. Under-damped springs overshoot before settling; the curve
// ends exactly at 1.
func Spring(frequency, damping float64) Easing {
	s := harmonica.NewSpring(1.0/springSteps, frequency, damping)
	samples := make([]float64, springSteps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i < springSteps; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples[i] = pos
	}
	samples[springSteps] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSteps
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

// Named returns the easing for a configured curve name. Unknown names ease
// in and out.
func Named(name string) Easing {
	switch name {
	case config.EasingLinear:
		return Linear
	case config.EasingSpring:
		return Spring(SpringFrequency, SpringDamping)
	default:
		return EaseInOut
	}
}

// CubicBezier returns the easing described by a cubic Bézier curve from
// (0,0) to (1,1) with control points (x1,y1) and (x2,y2).
// x1 and x2 must lie within [0,1] so that the curve is a function of x.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(solveX(t, x1, x2), y1, y2)
	}
}

// bezier evaluates one coordinate of the curve at parameter s.
func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// solveX finds the curve parameter whose x coordinate is x.
// Newton-Raphson converges in a few steps on well-behaved curves; bisection
// covers flat slopes.
func solveX(x, x1, x2 float64) float64 {
	const epsilon = 1e-7

	s := x
	for range 8 {
		dx := bezier(s, x1, x2) - x
		if math.Abs(dx) < epsilon {
			return s
		}
		slope := bezierSlope(s, x1, x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s -= dx / slope
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		v := bezier(s, x1, x2)
		if math.Abs(v-x) < epsilon {
			return s
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		next := (lo + hi) / 2
		if next == s {
			break
		}
		s = next
	}
	return s
}
