package confetti

import (
	"context"
	"log"
	"math"
	"math/rand"
	"time"
)

// Effect owns one confetti burst and the surface it draws to.
//
// Effect is not safe for concurrent use; Start and Tick must be called from
// the goroutine that drives frames.
type Effect struct {
	surface   Surface
	params    Params
	rng       *rand.Rand
	particles []Particle
	bottom    float64
	running   bool
	ticks     int
}

// NewEffect creates an idle effect. A nil rng falls back to a time-seeded source.
func NewEffect(surface Surface, params Params, rng *rand.Rand) *Effect {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Effect{
		surface: surface,
		params:  params,
		rng:     rng,
	}
}

// Start spawns a fresh burst at the center of the surface and shows it.
// Calling Start while a burst is running replaces the old burst.
func (e *Effect) Start() {
	width, height := e.surface.Size()
	e.particles = NewBurst(e.rng, e.params, width/2, height/2)
	e.bottom = height + e.params.OffscreenMargin
	e.running = true
	e.ticks = 0

	e.surface.Show()
	log.Printf("[Confetti] Burst started: %d particles at (%.0f, %.0f)", len(e.particles), width/2, height/2)
}

// Tick redraws every particle at its current state, advances the
// simulation, and hides the surface once all particles are gone.
func (e *Effect) Tick() StepResult {
	if !e.running {
		return Done
	}

	e.surface.Clear()
	for i := range e.particles {
		e.draw(&e.particles[i])
	}
	if p, ok := e.surface.(Presenter); ok {
		p.Present()
	}

	e.ticks++
	if Step(e.particles, e.params.Gravity, e.bottom) == Continue {
		return Continue
	}

	e.stop()
	return Done
}

// Run starts a burst and drives it with RunLoop at the given frame interval.
func (e *Effect) Run(ctx context.Context, frame time.Duration) error {
	e.Start()
	err := RunLoop(ctx, frame, e.Tick)
	if err != nil && e.running {
		e.stop()
	}
	return err
}

// Running reports whether a burst is in progress.
func (e *Effect) Running() bool {
	return e.running
}

// Particles returns the live particle slice (nil when idle).
func (e *Effect) Particles() []Particle {
	return e.particles
}

// Ticks returns how many ticks the current or last burst has run.
func (e *Effect) Ticks() int {
	return e.ticks
}

func (e *Effect) draw(p *Particle) {
	e.surface.SetFillColor(p.Color)
	e.surface.Save()
	e.surface.Translate(p.X, p.Y)
	e.surface.Rotate(p.Rotation * math.Pi / 180)
	e.surface.FillRect(-p.Size/2, -p.Size/4, p.Size, p.Size/2)
	e.surface.Restore()
}

func (e *Effect) stop() {
	e.running = false
	e.particles = nil
	e.surface.Hide()
	log.Printf("[Confetti] Burst finished after %d ticks", e.ticks)
}
