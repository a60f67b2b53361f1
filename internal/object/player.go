package object

// PlayerSymbol is the ship glyph.
const PlayerSymbol = 'A'

// Player is the player-controlled ship. It sits on a fixed row near the
// bottom of the field and only moves horizontally, clamped inside the
// border columns.
type Player struct {
	X, Y int
	MaxX int // Field width; X stays within [1, MaxX-2]
}

// NewPlayer creates a ship centered at the bottom of a field.
func NewPlayer(width, height int) *Player {
	return &Player{
		X:    width / 2,
		Y:    height - 2,
		MaxX: width,
	}
}

// Move shifts the ship horizontally, clamped to the field interior.
func (p *Player) Move(dx int) {
	x := p.X + dx
	if x < 1 {
		x = 1
	}
	if x > p.MaxX-2 {
		x = p.MaxX - 2
	}
	p.X = x
}

// Position implements Drawable.
func (p *Player) Position() (int, int) { return p.X, p.Y }

// Symbol implements Drawable.
func (p *Player) Symbol() rune { return PlayerSymbol }
