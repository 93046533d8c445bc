package effects

// Playfield is the rectangular region considered on screen. Entities that
// leave it are deactivated by their owner.
type Playfield struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// DefaultPlayfield matches the game's fixed 700x750 window with a 50px
// off-screen margin on every side.
func DefaultPlayfield() Playfield {
	return Playfield{MinX: -50, MinY: -50, MaxX: 750, MaxY: 800}
}

// Contains reports whether (x, y) is inside the playfield, edges inclusive.
func (p Playfield) Contains(x, y float64) bool {
	return x >= p.MinX && x <= p.MaxX && y >= p.MinY && y <= p.MaxY
}
