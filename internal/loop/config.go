package loop

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Scoring
const (
	InvaderScore = 10 // Points per destroyed invader
)

// Player
const (
	MaxPlayerShots = 3 // Live player shots on screen at once
)

// Invaders
const (
	FireChance = 0.02 // Per-tick probability that the wave fires

	baseMarchInterval = 300 * time.Millisecond
	marchSpeedup      = 30 * time.Millisecond // Interval reduction per level
	minMarchInterval  = 50 * time.Millisecond
)

// Pacing
const (
	animInterval = 300 * time.Millisecond
	frameSleep   = 10 * time.Millisecond
)
