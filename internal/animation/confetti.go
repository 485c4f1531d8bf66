package animation

import (
	"iter"
	"math/rand/v2"
)

const (
	// ParticlesPerCannon is the burst size of each side.
	ParticlesPerCannon = 25
	// Gravity is added to the vertical velocity every frame.
	Gravity = 0.3
	// AirResistance scales the horizontal velocity every frame.
	AirResistance = 0.99
	// cullMargin is how far past the canvas edge a particle may drift
	// before it is dropped.
	cullMargin = 50

	// DefaultCanvasWidth and DefaultCanvasHeight size the simulation when
	// the renderer does not know its surface yet.
	DefaultCanvasWidth  = 1000
	DefaultCanvasHeight = 700
)

// ConfettiColors is the ten-color palette particles are drawn from.
var ConfettiColors = []string{
	"#FFD700", "#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
	"#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE",
}

// Particle is one confetti piece in canvas coordinates, y growing down.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64
	Size          float64
	Color         string
}

// Confetti simulates two cannons firing from the lower left and lower
// right edges toward the middle. It is not safe for concurrent use.
type Confetti struct {
	width, height float64
	particles     []Particle
}

// NewConfetti fires both cannons on a width x height canvas. rng drives
// every random choice, so a seeded source replays the same burst.
func NewConfetti(width, height float64, rng *rand.Rand) *Confetti {
	c := &Confetti{
		width:     width,
		height:    height,
		particles: make([]Particle, 0, 2*ParticlesPerCannon),
	}

	for _, side := range []struct {
		x   float64
		dir float64
	}{
		{x: -10, dir: 1},
		{x: width + 10, dir: -1},
	} {
		for range ParticlesPerCannon {
			c.particles = append(c.particles, Particle{
				X:             side.x,
				Y:             height * 0.7,
				VX:            side.dir * (rng.Float64()*8 + 4),
				VY:            -(rng.Float64()*15 + 10),
				RotationSpeed: (rng.Float64() - 0.5) * 10,
				Size:          rng.Float64()*8 + 4,
				Color:         ConfettiColors[rng.IntN(len(ConfettiColors))],
			})
		}
	}

	return c
}

// Step advances the simulation one frame and drops particles that left
// the canvas through the bottom or a side.
func (c *Confetti) Step() {
	kept := c.particles[:0]
	for _, p := range c.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= AirResistance
		p.VY += Gravity
		p.Rotation += p.RotationSpeed

		if p.Y < c.height+cullMargin && p.X > -cullMargin && p.X < c.width+cullMargin {
			kept = append(kept, p)
		}
	}
	c.particles = kept
}

// Particles returns the live particles. The slice is reused by Step.
func (c *Confetti) Particles() []Particle {
	return c.particles
}

// Done reports whether every particle has left the canvas.
func (c *Confetti) Done() bool {
	return len(c.particles) == 0
}

// Size returns the canvas dimensions.
func (c *Confetti) Size() (width, height float64) {
	return c.width, c.height
}

// Frames steps the simulation and yields the live particles after each
// step until none remain.
func (c *Confetti) Frames() iter.Seq[[]Particle] {
	return func(yield func([]Particle) bool) {
		for !c.Done() {
			c.Step()
			if !yield(c.particles) {
				return
			}
		}
	}
}
