package loop

import "github.com/tomz197/invaders/internal/object"

// ResolveCollisions applies exact-cell hit tests. Each player shot is
// matched against the invaders; a hit removes both shot and invader and
// scores, so one shot never passes through to a second invader. Invader
// shots sharing the player's cell set the game-over flag.
func (s *State) ResolveCollisions() {
	kept := s.PlayerShots[:0]
	for _, shot := range s.PlayerShots {
		if s.removeInvaderAt(shot.X, shot.Y) {
			s.Score += InvaderScore
			continue // Shot is spent
		}
		kept = append(kept, shot)
	}
	s.PlayerShots = kept

	for _, shot := range s.InvaderShots {
		if shot.X == s.Player.X && shot.Y == s.Player.Y {
			s.GameOver = true
		}
	}
}

// removeInvaderAt removes at most one invader occupying the cell. Invader
// order carries no meaning, so swap-removal is fine.
func (s *State) removeInvaderAt(x, y int) bool {
	for i, v := range s.Invaders {
		if v.X == x && v.Y == y {
			last := len(s.Invaders) - 1
			s.Invaders[i] = s.Invaders[last]
			s.Invaders = s.Invaders[:last]
			return true
		}
	}
	return false
}

// CheckWaveCleared respawns the wave at the next level once the last
// invader is gone. Shots in flight do not carry across waves. With
// invaders still alive this is a no-op.
func (s *State) CheckWaveCleared() {
	if len(s.Invaders) > 0 {
		return
	}
	s.Level++
	s.Invaders = object.NewWave(s.Width)
	s.PlayerShots = s.PlayerShots[:0]
	s.InvaderShots = s.InvaderShots[:0]
}
