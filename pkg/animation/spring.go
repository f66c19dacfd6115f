package animation

import "math"

// SpringDescription describes a damped spring.
type SpringDescription struct {
	// Mass of the attached object. Zero means 1.
	Mass float64
	// Stiffness is the spring constant k.
	Stiffness float64
	// Damping is the damping coefficient c.
	Damping float64
}

// KnobSpring is the stiff, lightly bouncy spring used for toggle knobs.
func KnobSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 500, Damping: 30}
}

// BouncySpring overshoots visibly before settling.
func BouncySpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 180, Damping: 12}
}

// DampingRatio returns c / (2*sqrt(k*m)). Values below 1 overshoot.
func (s SpringDescription) DampingRatio() float64 {
	m := s.mass()
	if s.Stiffness <= 0 {
		return math.Inf(1)
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*m))
}

func (s SpringDescription) mass() float64 {
	if s.Mass <= 0 {
		return 1
	}
	return s.Mass
}

// Spring settle tolerances.
const (
	springDistanceTolerance = 1e-3
	springVelocityTolerance = 1e-2
	springMaxStep           = 1.0 / 1000
)

// SpringSimulation integrates a spring toward a target.
//
// Step advances by dt seconds using fixed sub-steps, so results do not
// depend on the host frame rate.
type SpringSimulation struct {
	spring   SpringDescription
	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation starts a simulation at position with velocity,
// pulled toward target.
func NewSpringSimulation(spring SpringDescription, position, velocity, target float64) *SpringSimulation {
	sim := &SpringSimulation{
		spring:   spring,
		position: position,
		velocity: velocity,
		target:   target,
	}
	sim.done = sim.atRest()
	if sim.done {
		sim.position = target
		sim.velocity = 0
	}
	return sim
}

// Step advances the simulation by dt seconds and reports whether it settled.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}
	m := s.spring.mass()
	for dt > 0 {
		h := math.Min(dt, springMaxStep)
		// Semi-implicit Euler.
		force := -s.spring.Stiffness*(s.position-s.target) - s.spring.Damping*s.velocity
		s.velocity += force / m * h
		s.position += s.velocity * h
		dt -= h
		if s.atRest() {
			s.position = s.target
			s.velocity = 0
			s.done = true
			break
		}
	}
	return s.done
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// Target returns the rest position.
func (s *SpringSimulation) Target() float64 { return s.target }

// IsDone reports whether the spring settled at its target.
func (s *SpringSimulation) IsDone() bool { return s.done }

func (s *SpringSimulation) atRest() bool {
	return math.Abs(s.position-s.target) < springDistanceTolerance &&
		math.Abs(s.velocity) < springVelocityTolerance
}
