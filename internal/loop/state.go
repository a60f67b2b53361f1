package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// State holds everything owned by one game session: the player, the
// invader wave, both shot collections, and the session counters. All
// mutation happens through its methods, in loop order, on one goroutine.
type State struct {
	Player       *object.Player
	Invaders     []*object.Invader
	PlayerShots  []*object.Shot
	InvaderShots []*object.Shot
	MarchDir     int // +1 marching right, -1 left
	Score        int
	Level        int
	GameOver     bool

	Width  int
	Height int

	rng *rand.Rand
}

// NewState creates a session for a field of the given size. rng drives
// invader fire and must not be nil.
func NewState(width, height int, rng *rand.Rand) *State {
	return &State{
		Player:   object.NewPlayer(width, height),
		Invaders: object.NewWave(width),
		MarchDir: 1,
		Level:    1,
		Width:    width,
		Height:   height,
		rng:      rng,
	}
}

// Apply performs the state change for one polled key and reports whether
// the player asked to quit. Unrecognized keys change nothing.
func (s *State) Apply(key input.Key) (quit bool) {
	switch key {
	case input.KeyQuit:
		return true
	case input.KeyLeft:
		s.Player.Move(-1)
	case input.KeyRight:
		s.Player.Move(1)
	case input.KeyFire:
		if len(s.PlayerShots) < MaxPlayerShots {
			s.PlayerShots = append(s.PlayerShots, object.NewShot(s.Player.X, s.Player.Y-1, object.ShotUp))
		}
	}
	return false
}

// MarchInterval returns how long the wave waits between march steps at the
// current level. The floor keeps high levels playable.
func (s *State) MarchInterval() time.Duration {
	interval := baseMarchInterval - time.Duration(s.Level-1)*marchSpeedup
	if interval < minMarchInterval {
		interval = minMarchInterval
	}
	return interval
}

// AdvanceInvaders marches the whole wave one step. Every invader moves
// before the edge test runs, and on an edge hit every invader descends and
// is tested against the player row — the wave reacts once, collectively,
// never to the first offender alone.
func (s *State) AdvanceInvaders() {
	edgeHit := false
	for _, v := range s.Invaders {
		v.X += s.MarchDir
		if v.X <= 1 || v.X >= s.Width-2 {
			edgeHit = true
		}
	}
	if !edgeHit {
		return
	}

	s.MarchDir = -s.MarchDir
	for _, v := range s.Invaders {
		v.Y++
		if v.Y >= s.Player.Y {
			s.GameOver = true
		}
	}
}

// AnimateInvaders cycles every invader to its next animation frame.
func (s *State) AnimateInvaders() {
	for _, v := range s.Invaders {
		v.Animate()
	}
}

// MaybeInvaderFire lets the wave fire with probability FireChance: one
// uniformly chosen invader drops a shot from the row below it.
func (s *State) MaybeInvaderFire() {
	if len(s.Invaders) == 0 || s.rng.Float64() >= FireChance {
		return
	}
	shooter := s.Invaders[s.rng.Intn(len(s.Invaders))]
	s.InvaderShots = append(s.InvaderShots, object.NewShot(shooter.X, shooter.Y+1, object.ShotDown))
}

// AdvanceShots moves every shot one row and drops the ones that reached a
// field border.
func (s *State) AdvanceShots() {
	kept := s.PlayerShots[:0] // reuse backing array
	for _, shot := range s.PlayerShots {
		shot.Advance()
		if shot.Y > 1 {
			kept = append(kept, shot)
		}
	}
	s.PlayerShots = kept

	kept = s.InvaderShots[:0]
	for _, shot := range s.InvaderShots {
		shot.Advance()
		if shot.Y < s.Height-1 {
			kept = append(kept, shot)
		}
	}
	s.InvaderShots = kept
}
