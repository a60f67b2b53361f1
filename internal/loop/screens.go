package loop

import "github.com/tomz197/invaders/internal/input"

// runTitle shows the title screen until the player starts or quits.
// Reports whether the player quit.
func runTitle(d Display, in InputSource) (bool, error) {
	if err := drawTitle(d); err != nil {
		return false, err
	}
	for {
		switch in.Wait() {
		case input.KeyQuit:
			return true, nil
		case input.KeyFire:
			return false, nil
		}
	}
}

// drawTitle renders the title screen.
func drawTitle(d Display) error {
	width, height := d.Size()
	centerX := width / 2
	centerY := height / 2

	d.Clear()
	d.DrawBorder()

	title := "I N V A D E R S"
	d.DrawText(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to start"
	d.DrawText(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: A/D or Arrows to move, SPACE to shoot, Q to quit"
	d.DrawText(centerX-len(controls)/2, centerY+4, controls)

	return d.Present()
}

// runGameOver overlays the end message on the last rendered frame and
// waits for one acknowledging keystroke.
func runGameOver(d Display, in InputSource, s *State) error {
	msg := "GAME OVER - Press any key to exit"
	d.DrawText((s.Width-len(msg))/2, s.Height/2, msg)
	if err := d.Present(); err != nil {
		return err
	}
	in.Wait()
	return nil
}
