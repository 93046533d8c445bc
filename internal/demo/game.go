package demo

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mthorne/emberfx/internal/effects"
)

const (
	// The window shows the playfield interior: bounds run -50..750 / -50..800,
	// leaving a 50px off-screen margin around a 700x750 visible area.
	ScreenWidth  = 700
	ScreenHeight = 750

	// Fireballs launch from the bottom centre of the screen.
	launcherY = ScreenHeight - 40
	// HUD flash duration after a clipboard copy, in frames.
	flashFrames = 90
)

// backgroundColor is the deep night-sky fill the effects pop against.
var backgroundColor = color.RGBA{R: 12, G: 10, B: 24, A: 255}

// Game is the interactive effects showcase: click for explosions, fire
// fireballs at the cursor, copy a frame report to the clipboard.
type Game struct {
	explosions *effects.ExplosionManager
	fireballs  []*effects.Fireball
	loader     effects.SpriteLoader
	field      effects.Playfield
	rng        *rand.Rand
	frame      int

	flashMsg string // transient HUD message
	flashTTL int
}

// New builds the demo scene. assetRoot is the directory holding the optional
// fireball sprite; a missing or unreadable sprite just means the glow draw.
func New(assetRoot string) *Game {
	seed := time.Now().UnixNano()
	return &Game{
		explosions: effects.NewExplosionManager(seed),
		loader:     effects.DirLoader{Root: assetRoot},
		field:      effects.DefaultPlayfield(),
		rng:        rand.New(rand.NewSource(seed + 1)), // #nosec G404 -- cosmetic only
	}
}

func (g *Game) Update() error {
	g.handleInput()
	g.frame++

	g.explosions.Update()

	kept := g.fireballs[:0]
	for _, f := range g.fireballs {
		f.Update()
		if f.Active() {
			kept = append(kept, f)
		}
	}
	g.fireballs = kept

	if g.flashTTL > 0 {
		g.flashTTL--
	}
	return nil
}

func (g *Game) handleInput() {
	// Left click: explosion at the cursor.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.explosions.CreateExplosion(float64(mx), float64(my))
	}

	// Right click or F: fireball from the launcher toward the cursor.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF) {
		mx, my := ebiten.CursorPosition()
		g.fireballs = append(g.fireballs, effects.NewFireball(
			ScreenWidth/2, launcherY, float64(mx), float64(my),
			effects.FireballConfig{
				Loader: g.loader,
				Field:  g.field,
				Rand:   g.rng,
			}))
	}

	// B: a blue accent burst, showing the explicit-colour path.
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		mx, my := ebiten.CursorPosition()
		g.explosions.CreateExplosionColor(float64(mx), float64(my),
			color.RGBA{R: 90, G: 160, B: 255, A: 255}, 40)
	}

	// C: copy a frame report to the clipboard.
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		report := effects.CollectStats(g.explosions, g.fireballs).Report(g.frame)
		if err := clipboard.WriteAll(report); err != nil {
			log.Printf("clipboard copy failed: %v", err)
			g.flash("clipboard copy failed")
		} else {
			g.flash("report copied to clipboard")
		}
	}
}

func (g *Game) flash(msg string) {
	g.flashMsg = msg
	g.flashTTL = flashFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	canvas := &effects.EbitenCanvas{Screen: screen}
	g.explosions.Draw(canvas)
	for _, f := range g.fireballs {
		f.Draw(canvas)
	}

	s := effects.CollectStats(g.explosions, g.fireballs)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("frame %d  particles %d  fireballs %d", g.frame, s.Total(), s.Fireballs), 6, 6)
	ebitenutil.DebugPrintAt(screen,
		"LMB explode | RMB/F fireball | B blue burst | C copy report", 6, 22)
	if g.flashTTL > 0 {
		ebitenutil.DebugPrintAt(screen, g.flashMsg, 6, 38)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
