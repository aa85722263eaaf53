package audio

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Engine plays named clips through a single mixer
// PlayClip and StopClip make it usable as the clip half of an interaction effect sink
type Engine struct {
	config *Config
	out    Output
	lib    Library
	log    *slog.Logger

	mixer  *beep.Mixer
	master *effects.Volume

	mu      sync.Mutex // Protects playing and rng
	playing map[string]*voice
	rng     *rand.Rand

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// Option configures an Engine
type Option func(*Engine)

// WithOutput replaces the system speaker
func WithOutput(out Output) Option { return func(e *Engine) { e.out = out } }

// WithLibrary replaces the default clip library
func WithLibrary(lib Library) Option { return func(e *Engine) { e.lib = lib } }

// WithRand seeds noise generators
func WithRand(rng *rand.Rand) Option { return func(e *Engine) { e.rng = rng } }

// WithLogger sets the diagnostic logger
func WithLogger(log *slog.Logger) Option { return func(e *Engine) { e.log = log } }

// NewEngine creates an engine, nil cfg uses DefaultConfig
func NewEngine(cfg *Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		config:  cfg,
		out:     SpeakerOutput{},
		lib:     DefaultLibrary(),
		log:     slog.Default(),
		mixer:   &beep.Mixer{},
		playing: make(map[string]*voice),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	e.master = &effects.Volume{Streamer: e.mixer, Base: 2}
	if cfg.Volume <= 0 {
		e.master.Silent = true
	} else {
		e.master.Volume = math.Log2(cfg.Volume)
	}
	e.muted.Store(cfg.Muted)
	return e
}

// Start opens the output device
// A device that fails to open puts the engine in silent mode, not an error
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	rate := e.config.SampleRate
	if err := e.out.Init(rate, rate.N(e.config.BufferTime)); err != nil {
		e.log.Warn("audio device unavailable, running silent", "error", err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}

	e.applyMute()
	e.out.Play(e.master)
	e.running.Store(true)
	return nil
}

// Stop halts playback and releases the device
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if e.silentMode.Load() {
		return
	}

	e.out.Lock()
	e.mixer.Clear()
	e.out.Unlock()

	e.mu.Lock()
	clear(e.playing)
	e.mu.Unlock()

	e.out.Close()
}

// PlayClip starts the named clip
// A looping clip already playing is left alone
func (e *Engine) PlayClip(name string) {
	clip, ok := e.lib[name]
	if !ok {
		e.log.Debug("unknown audio clip", "clip", name)
		return
	}
	if !e.active() {
		return
	}

	e.mu.Lock()
	if v := e.playing[name]; v != nil && clip.Looping && !v.done.Load() {
		e.mu.Unlock()
		return
	}
	rng := e.voiceRand()
	e.mu.Unlock()

	var s beep.Streamer
	if clip.Looping {
		s = newRepeat(func() beep.Streamer { return clip.Build(e.config.SampleRate, rng) })
	} else {
		s = clip.Build(e.config.SampleRate, rng)
	}

	v := e.start(s)
	e.mu.Lock()
	e.playing[name] = v
	e.mu.Unlock()
}

// StopClip cuts the most recent playback of the named clip
func (e *Engine) StopClip(name string) {
	e.mu.Lock()
	v := e.playing[name]
	delete(e.playing, name)
	e.mu.Unlock()

	if v != nil {
		e.stop(v)
	}
}

// Playing reports whether the named clip is still sounding
func (e *Engine) Playing(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	v := e.playing[name]
	return v != nil && !v.done.Load()
}

// Footsteps returns a channel for the player's looping step sound
func (e *Engine) Footsteps() *Channel {
	return &Channel{engine: e}
}

// ToggleMute toggles mute state, returns true if now enabled
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	if e.running.Load() && !e.silentMode.Load() {
		e.applyMute()
	}
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsSilent reports whether the device failed to open
func (e *Engine) IsSilent() bool {
	return e.silentMode.Load()
}

// IsEnabled returns true if running, unmuted and backed by a device
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

func (e *Engine) active() bool {
	return e.running.Load() && !e.silentMode.Load()
}

// applyMute silences the master bus, voices keep advancing while muted
func (e *Engine) applyMute() {
	e.out.Lock()
	e.master.Silent = e.muted.Load() || e.config.Volume <= 0
	e.out.Unlock()
}

// voiceRand derives an independent generator, caller holds mu
func (e *Engine) voiceRand() *rand.Rand {
	return rand.New(rand.NewPCG(e.rng.Uint64(), e.rng.Uint64()))
}

func (e *Engine) start(s beep.Streamer) *voice {
	v := &voice{ctrl: &beep.Ctrl{Streamer: s, Paused: false}}
	e.out.Lock()
	e.mixer.Add(v)
	e.out.Unlock()
	return v
}

func (e *Engine) stop(v *voice) {
	e.out.Lock()
	v.ctrl.Streamer = nil
	e.out.Unlock()
	v.done.Store(true)
}

// voice tracks one playback so callers can ask whether it drained
type voice struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = v.ctrl.Stream(samples)
	if !ok {
		v.done.Store(true)
	}
	return n, ok
}

func (v *voice) Err() error { return v.ctrl.Err() }
