package effects

import (
	"errors"
	"image"
	"math"
	"math/rand"
	"testing"
)

// failLoader always fails, exercising the graceful sprite fallback.
type failLoader struct{}

func (failLoader) Sprite(name string, w, h int) (*Sprite, error) {
	return nil, errors.New("asset missing")
}

func testCfg(seed int64) FireballConfig {
	return FireballConfig{Rand: rand.New(rand.NewSource(seed))}
}

func TestFireball_ZeroDistanceFiresStraightUp(t *testing.T) {
	f := NewFireball(100, 100, 100, 100, testCfg(31))
	vx, vy := f.Velocity()
	if vx != 0 || vy != -fireballSpeed {
		t.Fatalf("source==target should fire straight up: got (%.2f, %.2f), want (0, %.2f)", vx, vy, -fireballSpeed)
	}
}

func TestFireball_AimStraightDown(t *testing.T) {
	f := NewFireball(0, 0, 0, 100, testCfg(32))
	vx, vy := f.Velocity()
	if vx != 0 || vy != fireballSpeed {
		t.Fatalf("target directly below should give (0, %.2f): got (%.2f, %.2f)", fireballSpeed, vx, vy)
	}
}

func TestFireball_VelocityNormalizedToSpeed(t *testing.T) {
	f := NewFireball(10, 20, 310, 420, testCfg(33))
	vx, vy := f.Velocity()
	if got := math.Hypot(vx, vy); math.Abs(got-fireballSpeed) > 1e-9 {
		t.Fatalf("velocity magnitude should be %.1f, got %.4f", fireballSpeed, got)
	}
	// Direction (3, 4) normalized: (7.2, 9.6) at speed 12.
	if math.Abs(vx-7.2) > 1e-9 || math.Abs(vy-9.6) > 1e-9 {
		t.Fatalf("velocity should be (7.2, 9.6), got (%.4f, %.4f)", vx, vy)
	}
}

func TestFireball_DeactivatesBeyondRightBound(t *testing.T) {
	f := NewFireball(748, 100, 1000, 100, testCfg(34))
	f.Update() // x: 748 → 760, past the 750 bound
	if f.Active() {
		x, _ := f.Position()
		t.Fatalf("fireball at x=%.1f should be inactive", x)
	}
}

func TestFireball_ActiveInsideBounds(t *testing.T) {
	f := NewFireball(350, 400, 350, 0, testCfg(35))
	for i := 0; i < 10; i++ {
		f.Update()
	}
	// y: 400 → 280, comfortably inside.
	if !f.Active() {
		t.Fatal("fireball inside the playfield should stay active")
	}
}

func TestFireball_ActiveOnBoundEdge(t *testing.T) {
	f := NewFireball(738, 100, 1000, 100, testCfg(36))
	f.Update() // x = 750: the bound itself is still on the field
	if !f.Active() {
		t.Fatal("fireball exactly on the bound should stay active")
	}
}

func TestFireball_CustomPlayfield(t *testing.T) {
	cfg := testCfg(37)
	cfg.Field = Playfield{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	f := NewFireball(95, 50, 200, 50, cfg)
	f.Update() // x = 107, outside the custom field
	if f.Active() {
		t.Fatal("fireball should respect an injected playfield")
	}
}

func TestFireball_Rect(t *testing.T) {
	f := NewFireball(100, 100, 0, 0, testCfg(38))
	r := f.Rect()
	want := image.Rect(85, 85, 115, 115)
	if r != want {
		t.Fatalf("rect: got %v, want %v", r, want)
	}
	if r.Dx() != 30 || r.Dy() != 30 {
		t.Fatalf("rect should be 30x30, got %dx%d", r.Dx(), r.Dy())
	}
}

func TestFireball_TrailSpawnsAndStaysLive(t *testing.T) {
	cfg := testCfg(39)
	cfg.Field = Playfield{MinX: -1e9, MinY: -1e9, MaxX: 1e9, MaxY: 1e9}
	f := NewFireball(0, 0, 1000, 1000, cfg)
	spawnedAny := false
	for i := 0; i < 60; i++ {
		f.Update()
		if f.TrailLen() > 0 {
			spawnedAny = true
		}
		for _, p := range f.trail {
			if p.life <= 0 {
				t.Fatalf("trail should be pruned of dead particles (life=%d)", p.life)
			}
		}
	}
	if !spawnedAny {
		t.Fatal("60 frames at 30% spawn chance should emit at least one trail particle")
	}
	if f.TrailLen() > 60 {
		t.Fatalf("at most one trail particle per frame, got %d after 60 frames", f.TrailLen())
	}
}

func TestFireball_TrailUsesTrailPalette(t *testing.T) {
	cfg := testCfg(40)
	cfg.Field = Playfield{MinX: -1e9, MinY: -1e9, MaxX: 1e9, MaxY: 1e9}
	f := NewFireball(0, 0, 500, 0, cfg)
	for i := 0; i < 40; i++ {
		f.Update()
	}
	for _, p := range f.trail {
		found := false
		for _, col := range trailColors {
			if p.col == col {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("trail colour %v not in the trail palette", p.col)
		}
	}
}

func TestFireball_DrawGlowFallbackWithoutSprite(t *testing.T) {
	f := NewFireball(100, 100, 0, 0, testCfg(41))
	c := &recordCanvas{}
	f.Draw(c)

	if len(c.blits) != 0 {
		t.Fatalf("no sprite means no blits, got %d", len(c.blits))
	}
	// 3 glow rings + outer core + inner core.
	if len(c.circles) != glowLayers+2 {
		t.Fatalf("expected %d circles, got %d", glowLayers+2, len(c.circles))
	}
	for i := 0; i < glowLayers; i++ {
		wantR := float32(fireballRadius + float64(10-i*3))
		wantA := uint8(100 - i*30)
		if c.circles[i].radius != wantR || c.circles[i].col.A != wantA {
			t.Fatalf("glow ring %d: got r=%.1f a=%d, want r=%.1f a=%d",
				i, c.circles[i].radius, c.circles[i].col.A, wantR, wantA)
		}
	}
	if c.circles[glowLayers].col != fireballCore || c.circles[glowLayers+1].col != fireballCoreHot {
		t.Fatal("core should be drawn as outer then inner colour")
	}
	if c.circles[glowLayers+1].radius != float32(fireballRadius-5) {
		t.Fatalf("inner core radius should be %.1f, got %.1f", fireballRadius-5, c.circles[glowLayers+1].radius)
	}
}

func TestFireball_DrawBlitsSpriteCentred(t *testing.T) {
	cfg := testCfg(42)
	cfg.Sprite = &Sprite{w: fireballSpriteW, h: fireballSpriteH}
	f := NewFireball(200, 300, 0, 0, cfg)
	c := &recordCanvas{}
	f.Draw(c)

	if len(c.blits) != 1 {
		t.Fatalf("sprite path should blit exactly once, got %d", len(c.blits))
	}
	if len(c.circles) != 0 {
		t.Fatalf("sprite path should draw no fallback circles, got %d", len(c.circles))
	}
	b := c.blits[0]
	if b.x != 200-fireballSpriteW/2 || b.y != 300-fireballSpriteH/2 {
		t.Fatalf("blit should be centred: got (%.1f, %.1f)", b.x, b.y)
	}
}

func TestFireball_LoaderFailureFallsBackSilently(t *testing.T) {
	cfg := testCfg(43)
	cfg.Loader = failLoader{}
	f := NewFireball(100, 100, 0, 0, cfg)
	if f.sprite != nil {
		t.Fatal("loader failure should leave the sprite unset")
	}
	c := &recordCanvas{}
	f.Draw(c)
	if len(c.circles) == 0 || len(c.blits) != 0 {
		t.Fatal("loader failure should degrade to the programmatic glow draw")
	}
}

func TestFireball_DrawsTrailBeforeBody(t *testing.T) {
	cfg := testCfg(44)
	cfg.Field = Playfield{MinX: -1e9, MinY: -1e9, MaxX: 1e9, MaxY: 1e9}
	f := NewFireball(0, 0, 1000, 0, cfg)
	for i := 0; i < 30 && f.TrailLen() == 0; i++ {
		f.Update()
	}
	if f.TrailLen() == 0 {
		t.Fatal("expected a trail particle within 30 frames")
	}

	c := &recordCanvas{}
	f.Draw(c)
	// The body's two core circles are the last commands; everything before
	// them belongs to the trail and the glow rings.
	last := c.circles[len(c.circles)-1]
	if last.col != fireballCoreHot {
		t.Fatalf("fireball core should be drawn last, got %v", last.col)
	}
}

func TestFireball_AcceptsArbitraryCoordinates(t *testing.T) {
	c := &recordCanvas{}
	for _, pos := range [][2]float64{{-9999, -9999}, {1e8, -1e8}, {0, 0}} {
		f := NewFireball(pos[0], pos[1], pos[1], pos[0], testCfg(45))
		for i := 0; i < 5; i++ {
			f.Update()
			f.Draw(c)
		}
	}
}
