package effects

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// SpriteLoader resolves a logical asset name to a sprite scaled to the
// requested pixel size.
type SpriteLoader interface {
	Sprite(name string, w, h int) (*Sprite, error)
}

// DirLoader loads PNG assets from a root directory. The root is explicit
// configuration passed in by the owner; there is no ambient asset path.
type DirLoader struct {
	Root string
}

func (l DirLoader) Sprite(name string, w, h int) (*Sprite, error) {
	f, err := os.Open(filepath.Join(l.Root, name))
	if err != nil {
		return nil, fmt.Errorf("open sprite %q: %w", name, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %q: %w", name, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return NewSprite(ebiten.NewImageFromImage(scaled)), nil
}
