package animation

import (
	"math"

	"github.com/go-drift/motion/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Use the helper constructors ([TweenFloat64], [TweenColor]) for common
// types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End. Receives the begin value,
	// end value, and progress t. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// EvaluateCurve applies curve to normalized time t and interpolates.
func (tw *Tween[T]) EvaluateCurve(curve Curve, t float64) T {
	if curve != nil {
		t = curve(clampUnit(t))
	}
	return tw.Evaluate(t)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates two colors in Lab space.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	return graphics.Lerp(a, b, t)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}

// Keyframes is an ordered list of stops spread evenly over progress.
// Two stops form a plain from/to tween; more stops form segments
// ([1, 1.3, 1] grows then shrinks back).
type Keyframes []float64

// At evaluates the keyframes at progress p. Progress outside [0, 1]
// extrapolates along the first or last segment.
func (k Keyframes) At(p float64) float64 {
	switch len(k) {
	case 0:
		return 0
	case 1:
		return k[0]
	}
	// Exact endpoints, so completed handles land on the final stop.
	switch p {
	case 0:
		return k[0]
	case 1:
		return k[len(k)-1]
	}
	segments := float64(len(k) - 1)
	pos := p * segments
	i := int(math.Floor(pos))
	if i < 0 {
		i = 0
	}
	if i > len(k)-2 {
		i = len(k) - 2
	}
	return LerpFloat64(k[i], k[i+1], pos-float64(i))
}

// First returns the first stop.
func (k Keyframes) First() float64 {
	if len(k) == 0 {
		return 0
	}
	return k[0]
}

// Last returns the final stop.
func (k Keyframes) Last() float64 {
	if len(k) == 0 {
		return 0
	}
	return k[len(k)-1]
}

// DisplayInt rounds an interpolated value for display. Values are kept
// unrounded internally so re-targeted runs do not accumulate rounding error.
func DisplayInt(v float64) int {
	return int(math.Round(v))
}
