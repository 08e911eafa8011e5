package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/parallax/motion"
	"github.com/lixenwraith/parallax/parameter"
)

// Player hands a streamer to an output; speaker.Play in production
type Player func(s beep.Streamer)

// Cue plays a tone on each regime transition, rate limited by a cooldown
// Rapid flips at the threshold produce at most one tone per cooldown
type Cue struct {
	mu       sync.Mutex
	play     Player
	rate     beep.SampleRate
	cooldown time.Duration
	last     time.Time
	played   int
	closer   func()
}

// NewCue creates a cue that sends tones to play
func NewCue(play Player) *Cue {
	return &Cue{
		play:     play,
		rate:     beep.SampleRate(parameter.CueSampleRate),
		cooldown: parameter.CueCooldown,
	}
}

// NewSpeakerCue initializes the speaker and returns a cue bound to it
func NewSpeakerCue() (*Cue, error) {
	rate := beep.SampleRate(parameter.CueSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.CueBufferDuration)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	c := NewCue(func(s beep.Streamer) { speaker.Play(s) })
	c.closer = speaker.Close
	return c, nil
}

// Transition plays the tone for entering regime r unless still cooling down
// Returns whether a tone was started
func (c *Cue) Transition(r motion.Regime, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.play == nil {
		return false
	}
	if !c.last.IsZero() && now.Sub(c.last) < c.cooldown {
		return false
	}
	c.last = now
	c.played++

	freq := parameter.CueFreeFreq
	if r == motion.RegimePinned {
		freq = parameter.CuePinnedFreq
	}
	c.play(c.tone(freq))
	return true
}

// Played returns the number of tones started
func (c *Cue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Close releases the speaker if this cue opened it
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer != nil {
		c.closer()
		c.closer = nil
	}
	c.play = nil
}

func (c *Cue) tone(freq float64) beep.Streamer {
	osc := newOscillator(freq, parameter.CueDuration, c.rate)
	shaped := newEnvelope(osc, parameter.CueDuration, parameter.CueAttack, parameter.CueRelease, c.rate)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: parameter.CueVolume}
}
