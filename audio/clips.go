package audio

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/village/parameter"
)

// ClipFunc builds a fresh streamer for one playback of a clip
type ClipFunc func(rate beep.SampleRate, rng *rand.Rand) beep.Streamer

// Clip describes a named sound
// Looping clips restart until stopped
type Clip struct {
	Build   ClipFunc
	Looping bool
}

// Library maps clip names to their generators
type Library map[string]Clip

// DefaultLibrary returns the synthesized village sounds
func DefaultLibrary() Library {
	return Library{
		parameter.ClipLanternLight: {Build: chime},
		parameter.ClipStatueGrind:  {Build: grind, Looping: true},
		parameter.ClipFootstepA:    {Build: footstep(110)},
		parameter.ClipFootstepB:    {Build: footstep(95)},
		parameter.ClipFootstepC:    {Build: footstep(125)},
	}
}

// chime is a bell-like harmonic stack with per-partial decay
func chime(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	partials := []struct {
		mult, vol float64
		tau       time.Duration
	}{
		{1.0, 0.5, 400 * time.Millisecond},
		{2.0, 0.25, 250 * time.Millisecond},
		{3.01, 0.15, 150 * time.Millisecond},
		{4.2, 0.08, 100 * time.Millisecond},
	}

	const base = 880.0
	voices := make([]beep.Streamer, 0, len(partials))
	for _, p := range partials {
		osc := NewOscillator(base*p.mult, parameter.ChimeDuration, WaveSine, rate, rng)
		voices = append(voices, newVolume(NewDecay(osc, 5*time.Millisecond, p.tau, rate), p.vol))
	}
	return beep.Mix(voices...)
}

// grind is one second of filtered noise over a low square rumble
func grind(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	const length = time.Second
	noise := NewLowpass(NewOscillator(0, length, WaveNoise, rate, rng), 300, rate)
	rumble := NewLowpass(NewOscillator(45, length, WaveSquare, rate, rng), 120, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.3))
}

// footstep is a short low thump followed by silence up to the step interval
func footstep(freq float64) ClipFunc {
	return func(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
		thump := NewDecay(
			beep.Mix(
				NewOscillator(freq, parameter.FootstepDuration, WaveSine, rate, rng),
				newVolume(NewLowpass(NewOscillator(0, parameter.FootstepDuration, WaveNoise, rate, rng), 800, rate), 0.3),
			),
			4*time.Millisecond, 40*time.Millisecond, rate,
		)
		gap := parameter.FootstepInterval - parameter.FootstepDuration
		return beep.Seq(thump, beep.Silence(rate.N(gap)))
	}
}
