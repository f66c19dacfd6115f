package animation

import "math"

// Curve maps normalized time t in [0, 1] to interpolation progress.
//
// Curves are pure. Progress may leave [0, 1] for curves that overshoot
// ([EaseOutBack]); keyframe evaluation extrapolates along the end segments.
//
// Standard curves: [LinearCurve], [EaseOutCubic], [Ease], [EaseIn], [EaseOut],
// [EaseInOut], [EaseOutBack]. Use [CubicBezier] to create custom curves
// matching CSS cubic-bezier().
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseOutCubic decelerates to rest: 1-(1-t)^3. Counters and progress fills
// use it for discrete value changes.
func EaseOutCubic(t float64) float64 {
	inv := 1 - clampUnit(t)
	return 1 - inv*inv*inv
}

// EaseOutBack overshoots the target slightly before settling. It is the
// fixed-duration stand-in for a spring when a spring integrator is not wanted.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Use for elements exiting the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Use for elements that stay on screen but change state.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
