package animation

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{-1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEaseOutCubicIsMonotonic(t *testing.T) {
	prev := EaseOutCubic(0)
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseOutCubic decreased at %d: %v < %v", i, v, prev)
		}
		if v > 1 {
			t.Fatalf("EaseOutCubic overshot at %d: %v", i, v)
		}
		prev = v
	}
}

func TestEaseOutBackOvershoots(t *testing.T) {
	if EaseOutBack(0) != 0 || EaseOutBack(1) != 1 {
		t.Fatalf("endpoints: %v %v", EaseOutBack(0), EaseOutBack(1))
	}
	if EaseOutBack(-0.5) != 0 || EaseOutBack(1.5) != 1 {
		t.Errorf("out of range: %v %v", EaseOutBack(-0.5), EaseOutBack(1.5))
	}
	peak := 0.0
	for i := range 101 {
		peak = math.Max(peak, EaseOutBack(float64(i)/100))
	}
	if peak <= 1 || peak > 1.15 {
		t.Errorf("peak = %v, want a small overshoot above 1", peak)
	}
}

func TestKeyframesAt(t *testing.T) {
	tests := []struct {
		name string
		k    Keyframes
		p    float64
		want float64
	}{
		{"empty", nil, 0.5, 0},
		{"single", Keyframes{3}, 0.5, 3},
		{"from-to mid", Keyframes{0, 10}, 0.5, 5},
		{"bounce peak", Keyframes{1, 1.3, 1}, 0.5, 1.3},
		{"bounce end", Keyframes{1, 1.3, 1}, 1, 1},
		{"pop start", Keyframes{1.5, 1}, 0, 1.5},
		{"overshoot extrapolates", Keyframes{0, 10}, 1.1, 11},
		{"undershoot extrapolates", Keyframes{0, 10}, -0.1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.At(tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("At(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDisplayInt(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{41.49, 41},
		{41.5, 42},
		{-0.4, 0},
		{99.999, 100},
	}
	for _, tt := range tests {
		if got := DisplayInt(tt.v); got != tt.want {
			t.Errorf("DisplayInt(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestSpringDampingRatio(t *testing.T) {
	if r := KnobSpring().DampingRatio(); r >= 1 || r < 0.5 {
		t.Errorf("knob spring damping ratio = %v, want slightly underdamped", r)
	}
	if r := BouncySpring().DampingRatio(); r >= KnobSpring().DampingRatio() {
		t.Errorf("bouncy spring should bounce more than the knob spring: %v", r)
	}
}

func TestSpringSimulationStartsAtRest(t *testing.T) {
	sim := NewSpringSimulation(KnobSpring(), 5, 0, 5)
	if !sim.IsDone() {
		t.Fatal("spring already at target should be done")
	}
	if sim.Step(0.016) != true {
		t.Error("Step on a settled spring reports done")
	}
}

func TestSpringSimulationIsFrameRateIndependent(t *testing.T) {
	a := NewSpringSimulation(KnobSpring(), 0, 0, 24)
	b := NewSpringSimulation(KnobSpring(), 0, 0, 24)
	for range 10 {
		a.Step(0.016)
	}
	for range 20 {
		b.Step(0.008)
	}
	if math.Abs(a.Position()-b.Position()) > 1e-9 {
		t.Errorf("positions diverge: %v vs %v", a.Position(), b.Position())
	}
}
