package object

// Wave grid shape.
const (
	WaveRows = 5
	WaveCols = 11

	waveColSpacing = 4
	waveRowSpacing = 2
	waveTopRow     = 2
)

// NewWave builds a horizontally centered WaveRows×WaveCols grid of invaders
// for a field of the given width. The layout depends only on the width, so
// every wave of a session spawns identically.
func NewWave(fieldWidth int) []*Invader {
	margin := (fieldWidth - WaveCols*waveColSpacing) / 2
	wave := make([]*Invader, 0, WaveRows*WaveCols)
	for r := 0; r < WaveRows; r++ {
		for c := 0; c < WaveCols; c++ {
			wave = append(wave, NewInvader(margin+c*waveColSpacing, waveTopRow+r*waveRowSpacing))
		}
	}
	return wave
}
