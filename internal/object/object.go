// Package object defines the game entities: the player ship, the invaders
// marching in a wave, and the shots both sides fire. Positions are integer
// grid cells; (0, 0) is the top-left corner of the field.
package object

// Drawable is the single capability the renderer needs from an entity:
// a grid-cell position and the symbol occupying it.
type Drawable interface {
	Position() (x, y int)
	Symbol() rune
}
