package breach

import "time"

// Config holds every tunable of the breach sequence. The durations,
// thresholds and probabilities are presentation tuning with no deeper
// meaning; they are grouped here so the feel can be adjusted in one place.
type Config struct {
	// Phase timing
	WarningDwell time.Duration // how long the warning panel stays up
	GlitchTotal  time.Duration // total length of the glitch phase
	GlitchTick   time.Duration // period of the glitch perturbation timer
	BurstLength  time.Duration // lifetime of a heavy burst or body offset

	// Per-tick rolls in [0,1); a roll above the threshold fires the effect
	HeavyThreshold  float64
	OffsetThreshold float64

	// Max absolute whole-frame displacement during an offset burst, px
	OffsetMaxX float64
	OffsetMaxY float64

	// Rain field
	CellSize    int     // glyph cell edge, px; columns = width / CellSize
	ResetChance float64 // chance a column restarts once past the bottom
	Alphabet    []rune  // glyph pool for the rain
}

// DefaultConfig returns the tuning the effect ships with.
func DefaultConfig() Config {
	return Config{
		WarningDwell: 2500 * time.Millisecond,
		GlitchTotal:  2 * time.Second,
		GlitchTick:   80 * time.Millisecond,
		BurstLength:  50 * time.Millisecond,

		HeavyThreshold:  0.7,
		OffsetThreshold: 0.8,
		OffsetMaxX:      5,
		OffsetMaxY:      5,

		CellSize:    14,
		ResetChance: 0.025,
		Alphabet:    []rune("アァカサタナハマヤャラワガザダバパイィキシチニヒミリヰギジヂビピ0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	}
}
