package loop

import (
	"fmt"

	"github.com/tomz197/invaders/internal/object"
)

// drawFrame renders the whole field: border and HUD first, then the
// player, invaders, player shots, and invader shots in that order. The
// display clips anything that strays outside the field.
func drawFrame(d Display, s *State) error {
	d.Clear()
	d.DrawBorder()

	d.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score))
	level := fmt.Sprintf(" Level: %d ", s.Level)
	d.DrawText(s.Width-len(level)-2, 0, level)

	drawSprite(d, s.Player)
	for _, v := range s.Invaders {
		drawSprite(d, v)
	}
	for _, shot := range s.PlayerShots {
		drawSprite(d, shot)
	}
	for _, shot := range s.InvaderShots {
		drawSprite(d, shot)
	}

	return d.Present()
}

func drawSprite(d Display, spr object.Drawable) {
	x, y := spr.Position()
	d.DrawChar(x, y, spr.Symbol())
}
