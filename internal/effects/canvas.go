package effects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing surface effects emit commands to. It is write-only:
// effects never read pixels back.
type Canvas interface {
	// FillCircle draws a filled circle centred on (x, y). Translucent colours
	// (A < 255) are blended over whatever is already on the surface.
	FillCircle(x, y, radius float32, col color.RGBA)
	// Blit draws a pre-scaled sprite with its top-left corner at (x, y).
	Blit(s *Sprite, x, y float64)
}

// EbitenCanvas draws onto an ebiten image using its vector primitives.
type EbitenCanvas struct {
	Screen *ebiten.Image
}

func (c *EbitenCanvas) FillCircle(x, y, radius float32, col color.RGBA) {
	vector.FillCircle(c.Screen, x, y, radius, col, false)
}

func (c *EbitenCanvas) Blit(s *Sprite, x, y float64) {
	if s == nil || s.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	c.Screen.DrawImage(s.img, op)
}
