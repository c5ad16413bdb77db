package animation

import "math"

// SpringDescription defines the physical parameters of a damped spring.
// All three values must be positive.
type SpringDescription struct {
	// Mass of the attached object.
	Mass float64
	// Stiffness is the spring constant.
	Stiffness float64
	// Damping is the friction coefficient.
	Damping float64
}

// Spring creates a SpringDescription from the conventional
// (damping, stiffness, mass) tuning triple.
func Spring(damping, stiffness, mass float64) SpringDescription {
	return SpringDescription{Mass: mass, Stiffness: stiffness, Damping: damping}
}

// DampingRatio returns the ratio of actual to critical damping.
// 1 is critically damped, below 1 underdamped (bouncy), above 1 overdamped.
func (d SpringDescription) DampingRatio() float64 {
	critical := 2 * math.Sqrt(d.Stiffness*d.Mass)
	if critical == 0 {
		return 0
	}
	return d.Damping / critical
}

// DefaultSpring returns the standard slider return-to-rest tuning.
func DefaultSpring() SpringDescription {
	return Spring(15, 150, 1)
}

// IOSSpring returns a critically damped spring matching iOS settle behavior.
func IOSSpring() SpringDescription {
	const mass, stiffness = 1.0, 1000.0
	return SpringDescription{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   2 * math.Sqrt(stiffness*mass),
	}
}

// BouncySpring returns an underdamped spring with visible overshoot.
func BouncySpring() SpringDescription {
	const mass, stiffness = 1.0, 600.0
	return SpringDescription{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   2 * math.Sqrt(stiffness*mass) * 0.65,
	}
}

// Settling tolerances. The simulation reports done once both the distance
// to target and the velocity drop below these, then snaps to the target.
const (
	springDistanceTolerance = 0.01
	springVelocityTolerance = 0.01
)

// maxSubstep bounds the integration step. Frame deltas larger than this are
// subdivided so stiff springs stay numerically stable.
const maxSubstep = 1.0 / 240

// SpringSimulation integrates a damped spring toward a target position.
//
// Create one with the current position and velocity, then call Step with the
// frame delta in seconds until it reports done:
//
//	sim := animation.NewSpringSimulation(animation.IOSSpring(), pos, velocity, 0)
//	done := sim.Step(dt)
//	pos = sim.Position()
type SpringSimulation struct {
	desc     SpringDescription
	position float64
	velocity float64
	target   float64
	done     bool
}

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity, settling toward target.
func NewSpringSimulation(desc SpringDescription, position, velocity, target float64) *SpringSimulation {
	sim := &SpringSimulation{
		desc:     desc,
		position: position,
		velocity: velocity,
		target:   target,
	}
	sim.done = sim.settled()
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

	mass := s.desc.Mass
	if mass <= 0 {
		mass = 1
	}

	// Semi-implicit Euler, subdivided for stability.
	remaining := dt
	for remaining > 0 {
		h := remaining
		if h > maxSubstep {
			h = maxSubstep
		}
		remaining -= h

		displacement := s.position - s.target
		accel := (-s.desc.Stiffness*displacement - s.desc.Damping*s.velocity) / mass
		s.velocity += accel * h
		s.position += s.velocity * h

		if s.settled() {
			s.position = s.target
			s.velocity = 0
			s.done = true
			return true
		}
	}
	return false
}

// Position returns the current simulated position.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current simulated velocity.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// IsDone returns true once the simulation has settled at the target.
func (s *SpringSimulation) IsDone() bool {
	return s.done
}

func (s *SpringSimulation) settled() bool {
	return math.Abs(s.position-s.target) < springDistanceTolerance &&
		math.Abs(s.velocity) < springVelocityTolerance
}
