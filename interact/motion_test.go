package interact

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/village/vmath"
)

func motionZone(t *testing.T, m ...Motion) (*Controller, *Zone) {
	t.Helper()
	ctrl := NewController()
	z, err := ctrl.Add(Config{ID: "m", Position: vmath.Vec3F{Y: 1}}, WithMotion(m...))
	require.NoError(t, err)
	return ctrl, z
}

func TestSpinStopKeepsAngle(t *testing.T) {
	spin := NewSpin(vmath.V3FRight, 50, true)
	ctrl, z := motionZone(t, spin)

	for i := 0; i < 10; i++ {
		ctrl.Tick(100 * time.Millisecond)
	}
	assert.InDelta(t, 50.0, spin.Degrees(), 1e-9)

	spin.Stop()
	rot := z.Transform.Rotation
	ctrl.Tick(time.Second)
	assert.Equal(t, rot, z.Transform.Rotation)
	assert.False(t, spin.Running())
}

func TestRiseSnapsToTarget(t *testing.T) {
	target := vmath.Vec3F{Y: 1.5}
	rise := NewRise(target, 2)
	ctrl, z := motionZone(t, rise)

	ctrl.Tick(100 * time.Millisecond)
	assert.Equal(t, 1.0, z.Transform.Position.Y, "inactive until started")

	rise.Start()
	ctrl.Tick(100 * time.Millisecond)
	assert.InDelta(t, 1.1, z.Transform.Position.Y, 1e-9, "lerp factor dt*speed")

	for i := 0; i < 200 && rise.Active(); i++ {
		ctrl.Tick(16 * time.Millisecond)
	}
	assert.False(t, rise.Active())
	assert.Equal(t, target, z.Transform.Position)
}

func TestWindStaysNearBase(t *testing.T) {
	cfg := DefaultWindConfig()
	wind := NewWind(cfg, rand.New(rand.NewPCG(1, 2)))
	assert.GreaterOrEqual(t, wind.Phase(), 0.0)
	assert.Less(t, wind.Phase(), 100.0)

	ctrl, z := motionZone(t, wind)
	base := z.Transform.Position

	maxGust := 1.0
	for i := 0; i < 2000; i++ {
		ctrl.Tick(16 * time.Millisecond)
		g := wind.Gust()
		if g > maxGust {
			maxGust = g
		}
		assert.LessOrEqual(t, g, cfg.GustStrength*1.2+1e-9)
		offset := vmath.V3FDist(base, z.Transform.Position)
		assert.LessOrEqual(t, offset, cfg.Strength*cfg.GustStrength*1.2*0.1+1e-9)
	}
	assert.Greater(t, maxGust, 1.0, "gusts occur within 32s")
}

func TestWindPhaseDiffersPerInstance(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	a := NewWind(DefaultWindConfig(), rng)
	b := NewWind(DefaultWindConfig(), rng)
	assert.NotEqual(t, a.Phase(), b.Phase())
}

func TestMotionFuncAdapter(t *testing.T) {
	calls := 0
	ctrl, _ := motionZone(t, MotionFunc(func(*Zone, time.Duration, time.Duration) { calls++ }))
	ctrl.Tick(time.Millisecond)
	ctrl.Tick(time.Millisecond)
	assert.Equal(t, 2, calls)
}
