// Package loop provides the main game loop and state management.
package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/invaders/internal/input"
)

// Display is the drawing surface the game renders into. Implementations
// must clip out-of-range cells silently; a draw call is never an error.
type Display interface {
	Size() (width, height int)
	Clear()
	DrawBorder()
	DrawText(x, y int, s string)
	DrawChar(x, y int, ch rune)
	Present() error
}

// InputSource delivers key symbols. Poll never blocks and returns
// input.KeyNone when nothing is pending; Wait blocks until a key arrives.
type InputSource interface {
	Poll() input.Key
	Wait() input.Key
}

// Options tunes a game session.
type Options struct {
	// Rand drives invader fire; nil falls back to a time-seeded source.
	Rand *rand.Rand
	// SkipTitle starts play immediately without the title screen.
	SkipTitle bool
}

// Result summarizes a finished session.
type Result struct {
	Score int
	Level int
	Quit  bool // Player quit instead of losing
}

// outcome distinguishes how the playing phase ended.
type outcome int

const (
	outcomeQuit     outcome = iota // Player pressed quit
	outcomeGameOver                // Game-over flag set
)

// Run drives one full session: title screen, play, end screen. It returns
// once the player quits or acknowledges the game over.
func Run(d Display, in InputSource, opts Options) (Result, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if !opts.SkipTitle {
		quit, err := runTitle(d, in)
		if err != nil || quit {
			return Result{Quit: true}, err
		}
	}

	width, height := d.Size()
	state := NewState(width, height, rng)

	end, err := runPlaying(d, in, state)
	result := Result{
		Score: state.Score,
		Level: state.Level,
		Quit:  end == outcomeQuit,
	}
	if err != nil || result.Quit {
		return result, err
	}
	return result, runGameOver(d, in, state)
}

// runPlaying runs the fixed-order tick loop until the game ends or the
// player quits. Marching and animation advance on their own wall-clock
// timers, measured since their last firing, so pacing self-corrects
// against variable frame cost. When the game-over flag is set mid-tick the
// frame is still rendered before the loop exits.
func runPlaying(d Display, in InputSource, state *State) (outcome, error) {
	lastMarch := time.Now()
	lastAnim := time.Now()

	for !state.GameOver {
		if quit := state.Apply(in.Poll()); quit {
			return outcomeQuit, nil
		}

		now := time.Now()
		if now.Sub(lastMarch) >= state.MarchInterval() {
			state.AdvanceInvaders()
			lastMarch = now
		}
		if now.Sub(lastAnim) >= animInterval {
			state.AnimateInvaders()
			lastAnim = now
		}

		state.MaybeInvaderFire()
		state.AdvanceShots()
		state.ResolveCollisions()
		state.CheckWaveCleared()

		if err := drawFrame(d, state); err != nil {
			return outcomeGameOver, err
		}

		time.Sleep(frameSleep)
	}
	return outcomeGameOver, nil
}
