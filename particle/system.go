// Package particle simulates the one-shot particle bursts fired by zones.
package particle

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

// Particle is one live particle
type Particle struct {
	Pos      vmath.Vec3F
	Vel      vmath.Vec3F
	Drift    vmath.Vec3F
	Age      time.Duration
	Rotation float64
	Spin     float64
}

// Sample is a particle as the renderer sees it
type Sample struct {
	Emitter string
	Pos     vmath.Vec3F
	Size    float64
	Color   colorful.Color
	Alpha   float64
}

type emitter struct {
	cfg       EmitterConfig
	anchor    vmath.Vec3F
	particles []Particle
}

// System owns named emitters and advances their particles every tick
type System struct {
	mu       sync.Mutex
	emitters map[string]*emitter
	order    []string
	rng      *rand.Rand
	log      *slog.Logger

	statCreated atomic.Int64
	statActive  atomic.Int64
}

// NewSystem creates an empty particle system, rng may be nil
func NewSystem(rng *rand.Rand, log *slog.Logger) *System {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if log == nil {
		log = slog.Default()
	}
	return &System{
		emitters: make(map[string]*emitter),
		rng:      rng,
		log:      log,
	}
}

// Register adds or replaces an emitter anchored at a world position
func (s *System) Register(cfg EmitterConfig, anchor vmath.Vec3F) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.emitters[cfg.Name]; !exists {
		s.order = append(s.order, cfg.Name)
	}
	s.emitters[cfg.Name] = &emitter{cfg: cfg, anchor: anchor}
}

// Burst spawns the named emitter's full count at once
// Unknown names are logged and ignored
func (s *System) Burst(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.emitters[name]
	if !ok {
		s.log.Debug("burst for unknown emitter", slog.String("emitter", name))
		return
	}
	center := vmath.V3FAdd(e.anchor, e.cfg.Offset)
	for i := 0; i < e.cfg.Count; i++ {
		e.particles = append(e.particles, s.spawn(&e.cfg, center))
	}
	s.statCreated.Add(int64(e.cfg.Count))
	s.statActive.Add(int64(e.cfg.Count))
}

func (s *System) spawn(cfg *EmitterConfig, center vmath.Vec3F) Particle {
	var pos, dir vmath.Vec3F
	switch cfg.Shape {
	case ShapeCircle:
		angle := s.rng.Float64() * 2 * math.Pi
		r := cfg.SpawnRadius * math.Sqrt(s.rng.Float64())
		dir = vmath.Vec3F{X: math.Cos(angle), Z: math.Sin(angle)}
		pos = vmath.V3FAdd(center, vmath.V3FScale(dir, r))
	case ShapeSphere:
		// Uniform direction on the unit sphere
		z := 2*s.rng.Float64() - 1
		angle := s.rng.Float64() * 2 * math.Pi
		rxy := math.Sqrt(1 - z*z)
		dir = vmath.Vec3F{X: rxy * math.Cos(angle), Y: z, Z: rxy * math.Sin(angle)}
		pos = center
	}
	return Particle{
		Pos: pos,
		Vel: vmath.V3FScale(dir, cfg.StartSpeed),
		Drift: vmath.Vec3F{
			X: s.uniform(cfg.VelMin.X, cfg.VelMax.X),
			Y: s.uniform(cfg.VelMin.Y, cfg.VelMax.Y),
			Z: s.uniform(cfg.VelMin.Z, cfg.VelMax.Z),
		},
		Spin: s.uniform(-cfg.SpinRange, cfg.SpinRange),
	}
}

func (s *System) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Tick ages, moves and expires particles
func (s *System) Tick(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := dt.Seconds()
	var active int64
	for _, name := range s.order {
		e := s.emitters[name]
		gravity := parameter.ParticleGravity * e.cfg.GravityModifier * sec
		live := e.particles[:0]
		for _, p := range e.particles {
			p.Age += dt
			if p.Age >= e.cfg.Lifetime {
				continue
			}
			p.Vel.Y -= gravity
			step := vmath.V3FAdd(p.Vel, p.Drift)
			p.Pos = vmath.V3FAdd(p.Pos, vmath.V3FScale(step, sec))
			p.Rotation += p.Spin * sec
			live = append(live, p)
		}
		clear(e.particles[len(live):])
		e.particles = live
		active += int64(len(live))
	}
	s.statActive.Store(active)
}

// Active returns the number of live particles
func (s *System) Active() int {
	return int(s.statActive.Load())
}

// Created returns the number of particles spawned since creation
func (s *System) Created() int64 {
	return s.statCreated.Load()
}

// Samples returns renderable particles with size, color and alpha over lifetime applied
func (s *System) Samples() []Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Sample
	for _, name := range s.order {
		e := s.emitters[name]
		for _, p := range e.particles {
			t := float64(p.Age) / float64(e.cfg.Lifetime)
			out = append(out, Sample{
				Emitter: name,
				Pos:     p.Pos,
				Size:    e.cfg.StartSize * fade(t, e.cfg.FadeStart),
				Color:   ColorAt(&e.cfg, t),
				Alpha:   fade(t, e.cfg.FadeStart),
			})
		}
	}
	return out
}

// fade is 1 until start, then falls linearly to 0 at t = 1
func fade(t, start float64) float64 {
	if t <= start {
		return 1
	}
	if start >= 1 {
		return 0
	}
	return vmath.Clamp(1-(t-start)/(1-start), 0, 1)
}

// ColorAt returns the color over lifetime at normalized age t
func ColorAt(cfg *EmitterConfig, t float64) colorful.Color {
	if t <= cfg.FadeStart || cfg.FadeStart >= 1 {
		return cfg.Color
	}
	k := vmath.Clamp((t-cfg.FadeStart)/(1-cfg.FadeStart), 0, 1)
	return cfg.Color.BlendRgb(cfg.FadeColor, k).Clamped()
}
