package confetti

// StepResult tells the frame driver whether to schedule another tick.
type StepResult int

const (
	// Continue means at least one particle is still on screen.
	Continue StepResult = iota
	// Done means every particle has fallen past the bottom bound.
	Done
)

func (r StepResult) String() string {
	switch r {
	case Continue:
		return "Continue"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Advance applies one tick of motion: velocity to position,
// gravity to vertical velocity, spin to rotation.
func (p *Particle) Advance(gravity float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += gravity
	p.Rotation += p.RotationSpeed
}

// Step advances every particle by one tick and returns Continue while any
// particle is still above bottom (surface height plus the offscreen margin).
func Step(particles []Particle, gravity, bottom float64) StepResult {
	result := Done
	for i := range particles {
		particles[i].Advance(gravity)
		if particles[i].Y < bottom {
			result = Continue
		}
	}
	return result
}
