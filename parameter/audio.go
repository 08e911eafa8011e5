package parameter

import "time"

// Regime transition cue
const (
	// CueSampleRate is the speaker sample rate
	CueSampleRate = 44100

	// CueBufferDuration is the speaker buffer length
	CueBufferDuration = 100 * time.Millisecond

	// CueDuration is the length of one cue tone
	CueDuration = 60 * time.Millisecond

	// CueAttack and CueRelease shape the tone edges
	CueAttack  = 5 * time.Millisecond
	CueRelease = 30 * time.Millisecond

	// CueCooldown suppresses repeated cues while the page hovers at the threshold
	CueCooldown = 250 * time.Millisecond

	// CuePinnedFreq and CueFreeFreq are the tone frequencies when entering each regime
	CuePinnedFreq = 660.0
	CueFreeFreq   = 440.0

	// CueVolume is the beep Volume exponent (base 2); negative is quieter
	CueVolume = -2.0
)
