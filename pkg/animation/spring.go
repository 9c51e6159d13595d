package animation

import "math"

// Spring describes the physical constants of a damped spring.
type Spring struct {
	// Mass of the attached object, in arbitrary units (typically 1).
	Mass float64
	// Stiffness is the spring constant k.
	Stiffness float64
	// Damping is the drag coefficient c.
	Damping float64
}

// CriticalDamping returns the damping coefficient at which a spring with
// the given mass and stiffness settles without oscillating.
func CriticalDamping(mass, stiffness float64) float64 {
	return 2 * math.Sqrt(mass*stiffness)
}

// IOSSpring returns a critically damped spring tuned to match platform
// sheet and scroll settle behavior.
func IOSSpring() Spring {
	const mass, stiffness = 1.0, 500.0
	return Spring{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   CriticalDamping(mass, stiffness),
	}
}

// BouncySpring returns an underdamped spring with visible overshoot.
func BouncySpring() Spring {
	const mass, stiffness = 1.0, 500.0
	return Spring{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   0.75 * CriticalDamping(mass, stiffness),
	}
}

// Settle tolerances. The simulation reports done once the position is
// within distanceTolerance of the target and the velocity has decayed
// below velocityTolerance.
const (
	distanceTolerance = 0.1
	velocityTolerance = 1.0
)

// maxSubstep bounds the integration step so stiff springs stay stable
// even when the host frame rate stalls.
const maxSubstep = 1.0 / 240.0

// SpringSimulation integrates a damped spring from an initial position and
// velocity toward a target position. Step it once per frame with the frame
// delta in seconds; when it reports done, Position equals the target
// exactly.
type SpringSimulation struct {
	spring   Spring
	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity (e.g., from a fling gesture), settling at target.
func NewSpringSimulation(spring Spring, position, velocity, target float64) *SpringSimulation {
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	return &SpringSimulation{
		spring:   spring,
		position: position,
		velocity: velocity,
		target:   target,
	}
}

// Step advances the simulation by dt seconds and returns true once the
// spring has settled.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}

	// Semi-implicit Euler in bounded substeps.
	remaining := dt
	for remaining > 0 {
		h := remaining
		if h > maxSubstep {
			h = maxSubstep
		}
		remaining -= h

		displacement := s.position - s.target
		force := -s.spring.Stiffness*displacement - s.spring.Damping*s.velocity
		s.velocity += force / s.spring.Mass * h
		s.position += s.velocity * h
	}

	if math.Abs(s.position-s.target) < distanceTolerance && math.Abs(s.velocity) < velocityTolerance {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current simulated position.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current simulated velocity.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// IsDone reports whether the spring has settled at the target.
func (s *SpringSimulation) IsDone() bool {
	return s.done
}
