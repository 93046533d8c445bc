package effects

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"
)

// --- Fireball constants ---

// FireballSpriteName is the logical asset name of the projectile sprite.
const FireballSpriteName = "moving_fireball.png"

const (
	fireballSpeed   = 12.0 // px/frame
	fireballRadius  = 15.0 // draw and hit-test radius
	fireballSpriteW = 30   // sprite blit size
	fireballSpriteH = 30
	trailChance     = 0.3 // per-frame probability of emitting a trail particle
)

var trailColors = [...]color.RGBA{
	{R: 255, G: 150, B: 0, A: 255},
	{R: 255, G: 200, B: 50, A: 255},
	{R: 255, G: 100, B: 0, A: 255},
}

var (
	fireballGlow    = color.RGBA{R: 255, G: 150, B: 0, A: 255}
	fireballCore    = color.RGBA{R: 255, G: 200, B: 50, A: 255}
	fireballCoreHot = color.RGBA{R: 255, G: 255, B: 200, A: 255}
)

// Fireball is a straight-line projectile with a particle trail. The aim is
// captured at construction; there is no homing.
type Fireball struct {
	x, y   float64
	vx, vy float64
	radius float64
	active bool
	sprite *Sprite
	field  Playfield
	trail  []*ExplosionParticle
	rng    *rand.Rand
}

// FireballConfig carries the collaborators a fireball needs. The zero value
// is usable: default playfield, time-seeded RNG, programmatic glow draw.
type FireballConfig struct {
	// Sprite, when set, is blitted centred on the fireball instead of the
	// programmatic glow.
	Sprite *Sprite
	// Loader resolves FireballSpriteName when Sprite is nil. A load failure
	// is non-fatal: the fireball silently falls back to the glow draw.
	Loader SpriteLoader
	// Field overrides the playfield bounds used for deactivation.
	Field Playfield
	// Rand drives trail emission. Tests inject a seeded source here.
	Rand *rand.Rand
}

// NewFireball creates a projectile at (x, y) aimed at (targetX, targetY),
// moving at a fixed speed. Aiming at the spawn point itself fires straight up.
func NewFireball(x, y, targetX, targetY float64, cfg FireballConfig) *Fireball {
	sprite := cfg.Sprite
	if sprite == nil && cfg.Loader != nil {
		if s, err := cfg.Loader.Sprite(FireballSpriteName, fireballSpriteW, fireballSpriteH); err == nil {
			sprite = s
		}
	}
	field := cfg.Field
	if field == (Playfield{}) {
		field = DefaultPlayfield()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- cosmetic only
	}

	f := &Fireball{
		x:      x,
		y:      y,
		radius: fireballRadius,
		active: true,
		sprite: sprite,
		field:  field,
		rng:    rng,
	}
	dx := targetX - x
	dy := targetY - y
	if dist := math.Hypot(dx, dy); dist > 0 {
		f.vx = dx / dist * fireballSpeed
		f.vy = dy / dist * fireballSpeed
	} else {
		f.vy = -fireballSpeed
	}
	return f
}

// Update moves the fireball one frame, maybe emits a trail particle, ages
// and prunes the trail, and deactivates the fireball once it leaves the
// playfield.
func (f *Fireball) Update() {
	f.x += f.vx
	f.y += f.vy

	if f.rng.Float64() < trailChance {
		col := trailColors[f.rng.Intn(len(trailColors))]
		f.trail = append(f.trail, NewExplosionParticle(f.x, f.y, col, f.rng))
	}

	kept := f.trail[:0]
	for _, p := range f.trail {
		if p.Update() {
			kept = append(kept, p)
		}
	}
	f.trail = kept

	if !f.field.Contains(f.x, f.y) {
		f.active = false
	}
}

// Draw renders the trail first so the projectile lands on top of it, then
// blits the sprite centred on the position — or, without a sprite, draws
// three fading glow rings and a two-tone core.
func (f *Fireball) Draw(c Canvas) {
	for _, p := range f.trail {
		p.Draw(c)
	}

	if f.sprite != nil {
		w, h := f.sprite.Size()
		c.Blit(f.sprite, f.x-float64(w)/2, f.y-float64(h)/2)
		return
	}

	cx := float32(math.Round(f.x))
	cy := float32(math.Round(f.y))
	for i := 0; i < glowLayers; i++ {
		glow := fireballGlow
		glow.A = uint8(100 - i*30)
		c.FillCircle(cx, cy, float32(f.radius+float64(10-i*3)), glow)
	}
	c.FillCircle(cx, cy, float32(f.radius), fireballCore)
	c.FillCircle(cx, cy, float32(f.radius-5), fireballCoreHot)
}

// Active reports whether the fireball is still on the playfield. The owner
// drops inactive fireballs.
func (f *Fireball) Active() bool {
	return f.active
}

// Position returns the fireball's centre.
func (f *Fireball) Position() (x, y float64) {
	return f.x, f.y
}

// Velocity returns the per-frame velocity fixed at construction.
func (f *Fireball) Velocity() (vx, vy float64) {
	return f.vx, f.vy
}

// TrailLen returns the number of live trail particles.
func (f *Fireball) TrailLen() int {
	return len(f.trail)
}

// Rect returns the axis-aligned hit box centred on the fireball, used by the
// owning game logic for collision tests.
func (f *Fireball) Rect() image.Rectangle {
	r := int(f.radius)
	return image.Rect(int(f.x)-r, int(f.y)-r, int(f.x)+r, int(f.y)+r)
}
