package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// resampleQuality trades CPU for fidelity when pitching clips
const resampleQuality = 3

// Channel is a single looping voice whose clip can be swapped, used for footsteps
type Channel struct {
	engine *Engine

	mu    sync.Mutex
	voice *voice
	clip  string
}

// Playing reports whether the channel is sounding
func (c *Channel) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voice != nil && !c.voice.done.Load()
}

// Clip returns the clip last started on the channel
func (c *Channel) Clip() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clip
}

// Play loops clip at the given pitch ratio, replacing whatever the channel was playing
func (c *Channel) Play(clip string, pitch float64) {
	e := c.engine
	def, ok := e.lib[clip]
	if !ok {
		e.log.Debug("unknown audio clip", "clip", clip)
		return
	}
	if !e.active() {
		return
	}
	if pitch <= 0 {
		pitch = 1
	}

	e.mu.Lock()
	rng := e.voiceRand()
	e.mu.Unlock()

	rate := e.config.SampleRate
	loop := newRepeat(func() beep.Streamer {
		return beep.ResampleRatio(resampleQuality, pitch, def.Build(rate, rng))
	})

	c.mu.Lock()
	prev := c.voice
	c.voice = e.start(loop)
	c.clip = clip
	c.mu.Unlock()

	if prev != nil {
		e.stop(prev)
	}
}

// Stop silences the channel
func (c *Channel) Stop() {
	c.mu.Lock()
	v := c.voice
	c.voice = nil
	c.mu.Unlock()

	if v != nil {
		c.engine.stop(v)
	}
}
