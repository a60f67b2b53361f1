package object

// invaderFrames is the fixed animation cycle every invader steps through.
var invaderFrames = [4]rune{'/', 'V', '\\', 'Λ'}

// Invader is one enemy in the marching wave. The wave moves invaders in
// lockstep; each invader only tracks its own cell and animation frame.
type Invader struct {
	X, Y  int
	frame int
}

// NewInvader creates an invader at the given cell on frame zero.
func NewInvader(x, y int) *Invader {
	return &Invader{X: x, Y: y}
}

// Animate advances the invader to its next animation frame.
func (v *Invader) Animate() {
	v.frame = (v.frame + 1) % len(invaderFrames)
}

// Position implements Drawable.
func (v *Invader) Position() (int, int) { return v.X, v.Y }

// Symbol implements Drawable.
func (v *Invader) Symbol() rune { return invaderFrames[v.frame] }
