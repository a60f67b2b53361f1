package draw

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/invaders/internal/input"
)

// TcellScreen adapts a tcell screen to the game's display and input
// contracts. Events are pumped into a key channel on a background goroutine
// so the game loop can poll without blocking. tcell owns raw mode and
// cursor state; callers must Fini to restore the terminal.
type TcellScreen struct {
	screen tcell.Screen
	style  tcell.Style
	keys   chan input.Key
}

// NewTcellScreen initializes a tcell screen and starts its event pump.
func NewTcellScreen() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	s := &TcellScreen{
		screen: screen,
		style:  tcell.StyleDefault,
		keys:   make(chan input.Key, 64),
	}
	go s.pumpEvents()
	return s, nil
}

func (s *TcellScreen) pumpEvents() {
	defer close(s.keys)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.keys <- mapKeyEvent(ev)
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// mapKeyEvent translates a tcell key event into a game key symbol, using
// the same bindings as the raw byte stream.
func mapKeyEvent(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'j', 'J':
			return input.KeyLeft
		case 'd', 'D', 'l', 'L':
			return input.KeyRight
		case ' ', 'z', 'Z':
			return input.KeyFire
		case 'q', 'Q':
			return input.KeyQuit
		}
	}
	return input.KeyOther
}

// Size returns the terminal dimensions.
func (s *TcellScreen) Size() (width, height int) {
	return s.screen.Size()
}

// Clear erases the back buffer.
func (s *TcellScreen) Clear() {
	s.screen.Clear()
}

// DrawChar sets one cell, clipping silently outside the screen.
func (s *TcellScreen) DrawChar(x, y int, ch rune) {
	w, h := s.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	s.screen.SetContent(x, y, ch, nil, s.style)
}

// DrawText writes a string starting at (x, y), clipped to the screen.
func (s *TcellScreen) DrawText(x, y int, text string) {
	i := 0
	for _, ch := range text {
		s.DrawChar(x+i, y, ch)
		i++
	}
}

// DrawBorder draws a box along the screen edge.
func (s *TcellScreen) DrawBorder() {
	w, h := s.screen.Size()
	if w < 2 || h < 2 {
		return
	}
	for x := 1; x < w-1; x++ {
		s.DrawChar(x, 0, tcell.RuneHLine)
		s.DrawChar(x, h-1, tcell.RuneHLine)
	}
	for y := 1; y < h-1; y++ {
		s.DrawChar(0, y, tcell.RuneVLine)
		s.DrawChar(w-1, y, tcell.RuneVLine)
	}
	s.DrawChar(0, 0, tcell.RuneULCorner)
	s.DrawChar(w-1, 0, tcell.RuneURCorner)
	s.DrawChar(0, h-1, tcell.RuneLLCorner)
	s.DrawChar(w-1, h-1, tcell.RuneLRCorner)
}

// Present flushes the back buffer to the terminal.
func (s *TcellScreen) Present() error {
	s.screen.Show()
	return nil
}

// Poll returns the next key without blocking, or input.KeyNone when idle.
func (s *TcellScreen) Poll() input.Key {
	select {
	case k, ok := <-s.keys:
		if !ok {
			return input.KeyQuit
		}
		return k
	default:
		return input.KeyNone
	}
}

// Wait blocks until a key arrives.
func (s *TcellScreen) Wait() input.Key {
	k, ok := <-s.keys
	if !ok {
		return input.KeyQuit
	}
	return k
}

// Fini restores the terminal.
func (s *TcellScreen) Fini() {
	s.screen.Fini()
}
