package effects

import (
	"image/color"
	"math"
	"math/rand"
)

// --- Debris particle constants ---

const (
	particleGravity  = 0.3 // px/frame² added to vy
	particleShrink   = 0.1 // radius lost per frame
	particleLifetime = 30  // frames before expiry
	minParticleSize  = 1.0 // radius floor; at or below this the dot is spent
)

// Particle is a single decaying, falling dot — generic debris thrown off by
// a destroyed object.
type Particle struct {
	x, y   float64
	vx, vy float64
	size   float64
	col    color.RGBA
	age    int
}

// NewParticle spawns a debris dot at (x, y). Velocity and size are sampled
// from rng so the owner controls determinism.
func NewParticle(x, y float64, col color.RGBA, rng *rand.Rand) *Particle {
	return &Particle{
		x:    x,
		y:    y,
		vx:   rng.Float64()*6 - 3, // U[-3, 3]
		vy:   rng.Float64()*3 - 5, // U[-5, -2], always launched upward
		size: float64(3 + rng.Intn(4)),
		col:  col,
	}
}

// Update advances the particle one frame: Euler step, gravity, aging, shrink.
func (p *Particle) Update() {
	p.x += p.vx
	p.y += p.vy
	p.vy += particleGravity
	p.age++
	p.size = math.Max(minParticleSize, p.size-particleShrink)
}

// Draw emits the particle as a single filled circle while it has frames left.
func (p *Particle) Draw(c Canvas) {
	if p.age < particleLifetime {
		c.FillCircle(float32(math.Round(p.x)), float32(math.Round(p.y)), float32(p.size), p.col)
	}
}

// IsDead reports whether the owner should drop the particle.
func (p *Particle) IsDead() bool {
	return p.age >= particleLifetime || p.size <= minParticleSize
}
