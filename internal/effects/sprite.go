package effects

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is a pre-scaled image handle ready to blit.
type Sprite struct {
	img *ebiten.Image
	w   int
	h   int
}

// NewSprite wraps an already-scaled ebiten image.
func NewSprite(img *ebiten.Image) *Sprite {
	b := img.Bounds()
	return &Sprite{img: img, w: b.Dx(), h: b.Dy()}
}

// Size returns the sprite's width and height in pixels.
func (s *Sprite) Size() (int, int) {
	return s.w, s.h
}
