package object

// ShotSymbol is the glyph for shots from either side.
const ShotSymbol = '|'

// Shot travel directions.
const (
	ShotUp   = -1 // Player shots
	ShotDown = 1  // Invader shots
)

// Shot is a projectile travelling straight up or down one row per advance.
// It carries no bounds knowledge; removing off-field shots is the loop's
// responsibility.
type Shot struct {
	X, Y int
	Dir  int // ShotUp or ShotDown
}

// NewShot creates a shot at the given cell moving in dir.
func NewShot(x, y, dir int) *Shot {
	return &Shot{X: x, Y: y, Dir: dir}
}

// Advance moves the shot one row along its direction.
func (s *Shot) Advance() {
	s.Y += s.Dir
}

// Position implements Drawable.
func (s *Shot) Position() (int, int) { return s.X, s.Y }

// Symbol implements Drawable.
func (s *Shot) Symbol() rune { return ShotSymbol }
