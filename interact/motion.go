package interact

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

// Motion is a continuous transform change run every tick
// It runs regardless of actor distance and lifecycle state
type Motion interface {
	Step(z *Zone, now, dt time.Duration)
}

// MotionFunc adapts a function to Motion
type MotionFunc func(z *Zone, now, dt time.Duration)

func (f MotionFunc) Step(z *Zone, now, dt time.Duration) { f(z, now, dt) }

// Spin rotates the zone at a fixed angular velocity about an axis
type Spin struct {
	Axis  vmath.Vec3F
	Speed float64 // degrees per second

	// World rotates about the world axis instead of the local one
	World bool

	running bool
	total   float64
}

// NewSpin creates a spin, running selects whether it starts immediately
func NewSpin(axis vmath.Vec3F, speed float64, running bool) *Spin {
	return &Spin{Axis: axis, Speed: speed, running: running}
}

// Start resumes rotation
func (s *Spin) Start() { s.running = true }

// Stop halts rotation, accumulated angle is kept
func (s *Spin) Stop() { s.running = false }

// Running reports whether the spin advances on Step
func (s *Spin) Running() bool { return s.running }

// Degrees returns the total angle turned
func (s *Spin) Degrees() float64 { return s.total }

func (s *Spin) Step(z *Zone, _, dt time.Duration) {
	if !s.running || dt <= 0 {
		return
	}
	deg := s.Speed * dt.Seconds()
	delta := vmath.QFromAxisAngle(s.Axis, deg)
	if s.World {
		z.Transform.Rotation = vmath.QNormalize(vmath.QMul(delta, z.Transform.Rotation))
	} else {
		z.Transform.Rotation = vmath.QNormalize(vmath.QMul(z.Transform.Rotation, delta))
	}
	s.total += deg
}

// Rise lerps the zone position toward a target, snapping when close
type Rise struct {
	Target vmath.Vec3F
	Speed  float64

	active bool
}

// NewRise creates an inactive rise toward target
func NewRise(target vmath.Vec3F, speed float64) *Rise {
	return &Rise{Target: target, Speed: speed}
}

// Start begins moving toward the target
func (r *Rise) Start() { r.active = true }

// Active reports whether the rise is still moving
func (r *Rise) Active() bool { return r.active }

func (r *Rise) Step(z *Zone, _, dt time.Duration) {
	if !r.active {
		return
	}
	t := vmath.Clamp(dt.Seconds()*r.Speed, 0, 1)
	z.Transform.Position = vmath.V3FLerp(z.Transform.Position, r.Target, t)
	if vmath.V3FDist(z.Transform.Position, r.Target) < parameter.RiseSnapDistance {
		z.Transform.Position = r.Target
		r.active = false
	}
}

// WindConfig tunes a wind oscillation
type WindConfig struct {
	Direction    vmath.Vec3F
	Strength     float64
	Speed        float64
	WaveHeight   float64
	WaveSpeed    float64
	GustInterval float64 // seconds
	GustStrength float64
}

// DefaultWindConfig returns the flag defaults
func DefaultWindConfig() WindConfig {
	return WindConfig{
		Direction:    vmath.V3FRight,
		Strength:     parameter.FlagWindStrength,
		Speed:        parameter.FlagWindSpeed,
		WaveHeight:   parameter.FlagWaveHeight,
		WaveSpeed:    parameter.FlagWaveSpeed,
		GustInterval: parameter.FlagGustInterval,
		GustStrength: parameter.FlagGustStrength,
	}
}

// Wind sways the zone around its base transform with random gusts
type Wind struct {
	cfg   WindConfig
	dir   vmath.Vec3F
	rng   *rand.Rand
	phase float64

	base  Transform
	bound bool

	gust      float64
	untilGust float64 // seconds until the next gust starts

	ramping  bool
	rampFrom float64
	rampTo   float64
	rampDur  float64
	rampT    float64
}

// NewWind creates a wind motion with a random phase drawn from rng
func NewWind(cfg WindConfig, rng *rand.Rand) *Wind {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	w := &Wind{
		cfg:   cfg,
		dir:   vmath.V3FNormalize(cfg.Direction),
		rng:   rng,
		phase: rng.Float64() * parameter.FlagPhaseRange,
		gust:  1,
	}
	w.untilGust = w.nextInterval()
	return w
}

// Phase returns the per-instance time offset in seconds
func (w *Wind) Phase() float64 { return w.phase }

// Gust returns the current gust multiplier
func (w *Wind) Gust() float64 { return w.gust }

func (w *Wind) nextInterval() float64 {
	return w.cfg.GustInterval * w.uniform(0.5, 1.5)
}

func (w *Wind) uniform(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

func (w *Wind) Step(z *Zone, now, dt time.Duration) {
	if !w.bound {
		w.base = z.Transform
		w.bound = true
	}
	sec := dt.Seconds()
	w.stepGust(sec)

	t := now.Seconds() + w.phase
	wind := math.Sin(t*w.cfg.Speed) * w.cfg.Strength * w.gust
	wave := math.Sin(t*w.cfg.WaveSpeed) * w.cfg.WaveHeight

	sway := vmath.QFromEuler(wave*parameter.FlagPitchScale, wind*parameter.FlagYawScale, wind*parameter.FlagRollScale)
	z.Transform.Rotation = vmath.QMul(w.base.Rotation, sway)
	z.Transform.Position = vmath.V3FAdd(w.base.Position, vmath.V3FScale(w.dir, wind*parameter.FlagOffsetScale))
}

func (w *Wind) stepGust(sec float64) {
	if w.gust > 1 {
		w.gust = vmath.Lerp(w.gust, 1, sec*parameter.FlagGustRelax)
	}

	if w.ramping {
		w.rampT += sec
		if w.rampT >= w.rampDur {
			w.ramping = false
			w.untilGust = w.nextInterval()
		} else {
			w.gust = vmath.Lerp(w.rampFrom, w.rampTo, w.rampT/w.rampDur)
		}
		return
	}

	w.untilGust -= sec
	if w.untilGust <= 0 {
		w.ramping = true
		w.rampFrom = w.gust
		w.rampTo = w.cfg.GustStrength * w.uniform(0.8, 1.2)
		w.rampDur = w.uniform(0.5, 1.5)
		w.rampT = 0
	}
}
