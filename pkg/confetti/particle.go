// Package confetti implements the celebration confetti effect: a fixed-size
// burst of rectangular particles launched from the center of a drawing
// surface, pulled down by gravity until every particle has left the screen.
//
// The simulation is a plain step function. Whoever owns the frame clock
// (ebiten's Update, or RunLoop with a ticker) calls Effect.Tick once per
// frame until it returns Done.
package confetti

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/lolgame/pkg/config"
)

// Particle is a single confetti fragment.
// Velocities are in pixels per tick, rotation in degrees.
type Particle struct {
	X, Y          float64
	Size          float64
	Color         color.RGBA
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64
}

// Params holds the resolved simulation parameters for one effect.
type Params struct {
	Count           int
	Gravity         float64
	Spread          float64
	Size            config.Range
	VelocityY       config.Range
	RotationSpeed   config.Range
	OffscreenMargin float64
	Palette         []color.RGBA
}

// NewParams resolves a ConfettiConfig into simulation parameters,
// parsing the hex palette. Gravity must be positive so every burst falls
// past the bottom bound.
func NewParams(cfg config.ConfettiConfig) (Params, error) {
	if cfg.Gravity <= 0 {
		return Params{}, fmt.Errorf("confetti: gravity must be > 0, got %.2f", cfg.Gravity)
	}
	palette, err := ParsePalette(cfg.Colors)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Count:           cfg.ParticleCount,
		Gravity:         cfg.Gravity,
		Spread:          cfg.Spread,
		Size:            cfg.Size,
		VelocityY:       cfg.VelocityY,
		RotationSpeed:   cfg.RotationSpeed,
		OffscreenMargin: cfg.OffscreenMargin,
		Palette:         palette,
	}, nil
}

// DefaultParams returns the parameters of the stock effect
// (150 particles, gravity 0.3, six-color palette).
func DefaultParams() Params {
	params, err := NewParams(config.DefaultKitConfig().Confetti)
	if err != nil {
		// The default palette is a compile-time constant.
		panic(fmt.Sprintf("confetti: default params: %v", err))
	}
	return params
}

// ParsePalette converts hex color strings ("#FFD700") into RGBA values.
func ParsePalette(hexColors []string) ([]color.RGBA, error) {
	if len(hexColors) == 0 {
		return nil, fmt.Errorf("palette is empty")
	}
	palette := make([]color.RGBA, 0, len(hexColors))
	for _, hex := range hexColors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid palette color %q: %w", hex, err)
		}
		r, g, b := c.RGB255()
		palette = append(palette, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return palette, nil
}

// NewBurst creates params.Count particles at (originX, originY) with
// randomized size, color, velocity and rotation drawn from rng.
func NewBurst(rng *rand.Rand, params Params, originX, originY float64) []Particle {
	particles := make([]Particle, 0, params.Count)
	for i := 0; i < params.Count; i++ {
		particles = append(particles, Particle{
			X:             originX,
			Y:             originY,
			Size:          sample(rng, params.Size),
			Color:         params.Palette[rng.Intn(len(params.Palette))],
			VX:            rng.Float64()*params.Spread - params.Spread/2,
			VY:            sample(rng, params.VelocityY),
			Rotation:      rng.Float64() * 360,
			RotationSpeed: sample(rng, params.RotationSpeed),
		})
	}
	return particles
}

// sample returns a uniform value in [r.Min, r.Max).
func sample(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
