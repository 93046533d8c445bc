package effects

import "image/color"

// recordCanvas captures draw commands so tests can assert on what an effect
// emitted without a graphics backend.
type recordCanvas struct {
	circles []circleCmd
	blits   []blitCmd
}

type circleCmd struct {
	x, y, radius float32
	col          color.RGBA
}

type blitCmd struct {
	sprite *Sprite
	x, y   float64
}

func (c *recordCanvas) FillCircle(x, y, radius float32, col color.RGBA) {
	c.circles = append(c.circles, circleCmd{x: x, y: y, radius: radius, col: col})
}

func (c *recordCanvas) Blit(s *Sprite, x, y float64) {
	c.blits = append(c.blits, blitCmd{sprite: s, x: x, y: y})
}

func (c *recordCanvas) reset() {
	c.circles = c.circles[:0]
	c.blits = c.blits[:0]
}
