package effects

import (
	"image/color"
	"math"
	"math/rand"
)

// --- Explosion constants ---

const (
	explosionGravity = 0.2  // px/frame² added to vy
	explosionShrink  = 0.15 // radius lost per frame
	glowLayers       = 3    // concentric glow circles per particle
	glowLayerStep    = 5    // radius lost per glow layer

	defaultBurstCount = 50 // main-colour particles per default explosion
	whiteHotCount     = 20 // white-hot core particles per explosion
	orangeFringeCount = 15 // orange fringe particles per explosion
)

// ColorExplosion is the default main colour of an explosion burst.
var ColorExplosion = color.RGBA{R: 255, G: 200, B: 50, A: 255}

var (
	colorWhiteHot     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorOrangeFringe = color.RGBA{R: 255, G: 150, B: 0, A: 255}
)

// ExplosionParticle is a radiating, glowing dot with alpha fade. Velocity is
// sampled as a radial burst: uniform angle, uniform speed.
type ExplosionParticle struct {
	x, y     float64
	vx, vy   float64
	col      color.RGBA
	size     float64
	life     int // frames remaining
	maxLife  int // initial life, for the fade ratio
	glowSize int // outermost glow radius
}

// NewExplosionParticle spawns a burst particle at (x, y) with the given base
// colour. All randomness comes from rng.
func NewExplosionParticle(x, y float64, col color.RGBA, rng *rand.Rand) *ExplosionParticle {
	angle := rng.Float64() * 2 * math.Pi
	speed := 2 + rng.Float64()*6
	life := 25 + rng.Intn(21)
	return &ExplosionParticle{
		x:        x,
		y:        y,
		vx:       math.Cos(angle) * speed,
		vy:       math.Sin(angle) * speed,
		col:      col,
		size:     float64(4 + rng.Intn(7)),
		life:     life,
		maxLife:  life,
		glowSize: 15 + rng.Intn(16),
	}
}

// Update advances the particle one frame and reports whether it is still
// alive. Owners fold the update and the cull into a single pass on the
// return value; once it reports false the particle must be dropped, not
// updated again.
func (p *ExplosionParticle) Update() bool {
	p.x += p.vx
	p.y += p.vy
	p.vy += explosionGravity
	p.life--
	p.size = math.Max(minParticleSize, p.size-explosionShrink)
	return p.life > 0
}

// Draw emits the glow layers from largest/faintest inward, then the opaque
// core on top. Overall alpha fades linearly with remaining life.
func (p *ExplosionParticle) Draw(c Canvas) {
	if p.life <= 0 {
		return
	}
	alpha := int(math.Round(255 * float64(p.life) / float64(p.maxLife)))
	cx := float32(math.Round(p.x))
	cy := float32(math.Round(p.y))

	for i := 0; i < glowLayers; i++ {
		r := p.glowSize - i*glowLayerStep
		if r <= 0 {
			continue
		}
		a := alpha / (i + 2)
		if a < 0 {
			a = 0
		}
		glow := p.col
		glow.A = uint8(a)
		c.FillCircle(cx, cy, float32(r), glow)
	}

	c.FillCircle(cx, cy, float32(p.size), p.col)
}

// --- Explosion manager ---

// ExplosionManager owns every explosion particle in a scene: it spawns
// bursts, ages them, drops the dead and draws the rest.
type ExplosionManager struct {
	particles []*ExplosionParticle
	rng       *rand.Rand
}

// NewExplosionManager creates a manager with its own seeded RNG.
func NewExplosionManager(seed int64) *ExplosionManager {
	return &ExplosionManager{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- cosmetic only
	}
}

// CreateExplosion spawns a default burst: 50 particles in the default
// colour plus the fixed white-hot and orange batches.
func (m *ExplosionManager) CreateExplosion(x, y float64) {
	m.CreateExplosionColor(x, y, ColorExplosion, defaultBurstCount)
}

// CreateExplosionColor spawns num main-colour particles at (x, y), plus 20
// white-hot core particles and 15 orange fringe particles. Coordinates are
// not validated; off-screen bursts simply decay unseen.
func (m *ExplosionManager) CreateExplosionColor(x, y float64, col color.RGBA, num int) {
	for i := 0; i < num; i++ {
		m.particles = append(m.particles, NewExplosionParticle(x, y, col, m.rng))
	}
	for i := 0; i < whiteHotCount; i++ {
		m.particles = append(m.particles, NewExplosionParticle(x, y, colorWhiteHot, m.rng))
	}
	for i := 0; i < orangeFringeCount; i++ {
		m.particles = append(m.particles, NewExplosionParticle(x, y, colorOrangeFringe, m.rng))
	}
}

// Update ages every particle once and retains only the live ones.
func (m *ExplosionManager) Update() {
	kept := m.particles[:0]
	for _, p := range m.particles {
		if p.Update() {
			kept = append(kept, p)
		}
	}
	m.particles = kept
}

// Draw renders all particles in spawn order.
func (m *ExplosionManager) Draw(c Canvas) {
	for _, p := range m.particles {
		p.Draw(c)
	}
}

// Len returns the number of live particles.
func (m *ExplosionManager) Len() int {
	return len(m.particles)
}
