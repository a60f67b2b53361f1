package loop

import (
	"math/rand"
	"testing"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// scriptedInput replays a fixed key sequence, then repeats its final key.
type scriptedInput struct {
	keys []input.Key
	pos  int
}

func (s *scriptedInput) next() input.Key {
	if s.pos < len(s.keys) {
		k := s.keys[s.pos]
		s.pos++
		return k
	}
	if len(s.keys) == 0 {
		return input.KeyQuit
	}
	return s.keys[len(s.keys)-1]
}

func (s *scriptedInput) Poll() input.Key { return s.next() }
func (s *scriptedInput) Wait() input.Key { return s.next() }

func TestRunQuitsImmediately(t *testing.T) {
	d := newFakeDisplay(80, 24)
	in := &scriptedInput{keys: []input.Key{input.KeyQuit}}

	result, err := Run(d, in, Options{SkipTitle: true, Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Quit {
		t.Fatalf("expected a quit result")
	}
	if result.Score != 0 || result.Level != 1 {
		t.Fatalf("fresh session ended with score %d level %d", result.Score, result.Level)
	}
}

func TestRunTitleScreenQuit(t *testing.T) {
	d := newFakeDisplay(80, 24)
	in := &scriptedInput{keys: []input.Key{input.KeyOther, input.KeyQuit}}

	result, err := Run(d, in, Options{Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Quit {
		t.Fatalf("quitting the title screen must end the session")
	}
	if !d.hasText("I N V A D E R S") {
		t.Fatalf("title screen was never drawn")
	}
}

func TestRunPlayingEndsOnFatalShot(t *testing.T) {
	d := newFakeDisplay(80, 24)
	s := newTestState(80, 24)
	// One advance drops this shot onto the player.
	s.InvaderShots = []*object.Shot{object.NewShot(s.Player.X, s.Player.Y-1, object.ShotDown)}
	in := &scriptedInput{keys: []input.Key{input.KeyNone}}

	end, err := runPlaying(d, in, s)
	if err != nil {
		t.Fatalf("runPlaying: %v", err)
	}
	if end != outcomeGameOver {
		t.Fatalf("outcome = %d, want game over", end)
	}
	if !s.GameOver {
		t.Fatalf("game-over flag not set")
	}
	if d.presents == 0 {
		t.Fatalf("final frame was not rendered")
	}
}

func TestRunGameOverWaitsForAck(t *testing.T) {
	d := newFakeDisplay(80, 24)
	s := newTestState(80, 24)
	s.GameOver = true
	in := &scriptedInput{keys: []input.Key{input.KeyOther}}

	if err := runGameOver(d, in, s); err != nil {
		t.Fatalf("runGameOver: %v", err)
	}
	if !d.hasText("GAME OVER") {
		t.Fatalf("end message missing")
	}
	if in.pos == 0 {
		t.Fatalf("runGameOver returned without consuming a keystroke")
	}
}
