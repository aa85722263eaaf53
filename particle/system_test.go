package particle

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

func newTestSystem() *System {
	return NewSystem(rand.New(rand.NewPCG(42, 42)), nil)
}

func TestBlossomBurstSpawnsOnDisc(t *testing.T) {
	s := newTestSystem()
	anchor := vmath.Vec3F{X: 10, Z: -4}
	s.Register(BlossomConfig(), anchor)

	s.Burst(parameter.BurstBlossoms)
	samples := s.Samples()
	require.Len(t, samples, parameter.PetalCount)
	assert.EqualValues(t, parameter.PetalCount, s.Created())

	center := vmath.V3FAdd(anchor, vmath.Vec3F{Y: parameter.PetalSpawnHeight})
	for _, p := range samples {
		assert.Equal(t, center.Y, p.Pos.Y)
		assert.LessOrEqual(t, vmath.V3FDist(p.Pos, center), parameter.PetalSpawnRadius+1e-9)
		assert.Equal(t, parameter.PetalSize, p.Size)
		assert.Equal(t, 1.0, p.Alpha)
	}
}

func TestPetalsFallAndExpire(t *testing.T) {
	s := newTestSystem()
	s.Register(BlossomConfig(), vmath.V3FZero)
	s.Burst(parameter.BurstBlossoms)

	for i := 0; i < 10; i++ {
		s.Tick(100 * time.Millisecond)
	}
	assert.Equal(t, parameter.PetalCount, s.Active())
	for _, p := range s.Samples() {
		assert.Less(t, p.Pos.Y, parameter.PetalSpawnHeight, "drift and gravity pull petals down")
	}

	for i := 0; i < 40; i++ {
		s.Tick(100 * time.Millisecond)
	}
	assert.Zero(t, s.Active())
	assert.Empty(t, s.Samples())
}

func TestFadeOverLifetime(t *testing.T) {
	cfg := BlossomConfig()
	assert.Equal(t, 1.0, fade(0.5, cfg.FadeStart))
	assert.InDelta(t, 0.5, fade(0.9, cfg.FadeStart), 1e-9)
	assert.Equal(t, 0.0, fade(1, cfg.FadeStart))

	assert.Equal(t, cfg.Color, ColorAt(&cfg, 0.3))
	end := ColorAt(&cfg, 1)
	assert.InDelta(t, 1.0, end.R, 1e-9)
	assert.InDelta(t, 1.0, end.G, 1e-9)
	assert.InDelta(t, 1.0, end.B, 1e-9)
}

func TestFlareIsSpherical(t *testing.T) {
	s := newTestSystem()
	s.Register(FlareConfig(), vmath.V3FZero)
	s.Burst(parameter.BurstLanternFlare)
	s.Tick(100 * time.Millisecond)

	for _, p := range s.Samples() {
		assert.InDelta(t, parameter.FlareSpeed*0.1, vmath.V3FMag(p.Pos), 1e-9)
	}

	for i := 0; i < 8; i++ {
		s.Tick(100 * time.Millisecond)
	}
	assert.Zero(t, s.Active())
}

func TestUnknownBurstIgnored(t *testing.T) {
	s := newTestSystem()
	s.Burst("fireworks")
	assert.Zero(t, s.Active())
	assert.Zero(t, s.Created())
}

func TestRepeatedBurstsAccumulate(t *testing.T) {
	s := newTestSystem()
	s.Register(FlareConfig(), vmath.V3FZero)
	s.Burst(parameter.BurstLanternFlare)
	s.Burst(parameter.BurstLanternFlare)
	s.Tick(time.Millisecond)
	assert.Equal(t, 2*parameter.FlareCount, s.Active())
}
