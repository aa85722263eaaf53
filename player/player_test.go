package player

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

const dt = 10 * time.Millisecond

type footsteps struct {
	playing bool
	plays   []string
	pitches []float64
	stops   int
}

func (f *footsteps) Playing() bool { return f.playing }
func (f *footsteps) Play(clip string, pitch float64) {
	f.playing = true
	f.plays = append(f.plays, clip)
	f.pitches = append(f.pitches, pitch)
}
func (f *footsteps) Stop() {
	f.playing = false
	f.stops++
}

func frame(pressed []input.Action, axes map[input.Axis]float64) *input.Frame {
	return input.NewFrame(pressed, axes)
}

type controls struct{ f *input.Frame }

func (c *controls) Pressed(a input.Action) bool { return c.f.Pressed(a) }
func (c *controls) Axis(a input.Axis) float64   { return c.f.Axis(a) }
func (c *controls) set(f *input.Frame)          { c.f = f }
func (c *controls) idle()                       { c.f = nil }

func run(p *Player, d time.Duration) {
	for e := time.Duration(0); e < d; e += dt {
		p.Tick(dt)
	}
}

func TestWalkForwardFollowsHeading(t *testing.T) {
	c := &controls{}
	p := New(vmath.V3FZero, 0, WithControls(c))

	c.set(frame(nil, map[input.Axis]float64{input.AxisVertical: 1}))
	run(p, time.Second)
	assert.InDelta(t, parameter.PlayerMoveSpeed, p.Position().Z, 1e-6)
	assert.InDelta(t, 0.0, p.Position().X, 1e-9)

	p.yaw = 90
	run(p, time.Second)
	assert.InDelta(t, parameter.PlayerMoveSpeed, p.Position().X, 1e-6)
	assert.True(t, p.Grounded())
	assert.Equal(t, 0.0, p.Position().Y)
}

func TestLookClampsPitch(t *testing.T) {
	c := &controls{}
	p := New(vmath.V3FZero, 0, WithControls(c))

	c.set(frame(nil, map[input.Axis]float64{input.AxisLookY: -1, input.AxisLookX: 1}))
	run(p, 5*time.Second)
	assert.Equal(t, parameter.PlayerPitchLimit, p.Pitch())
	assert.NotZero(t, p.Yaw())
	assert.Less(t, p.Yaw(), 360.0)
}

func TestJumpArc(t *testing.T) {
	c := &controls{}
	p := New(vmath.V3FZero, 0, WithControls(c))

	c.set(frame([]input.Action{input.ActionJump}, nil))
	p.Tick(dt)
	c.idle()
	assert.False(t, p.Grounded())

	peak := 0.0
	for i := 0; i < 200 && !p.Grounded(); i++ {
		p.Tick(dt)
		peak = math.Max(peak, p.Position().Y)
	}
	assert.True(t, p.Grounded())
	assert.InDelta(t, parameter.PlayerJumpHeight, peak, 0.1)
	assert.Equal(t, 0.0, p.Position().Y)
}

func TestJumpNeedsGround(t *testing.T) {
	c := &controls{}
	p := New(vmath.Vec3F{Y: 10}, 0, WithControls(c))
	require.False(t, p.Grounded())

	c.set(frame([]input.Action{input.ActionJump}, nil))
	p.Tick(dt)
	assert.Less(t, p.VerticalVelocity(), 0.0, "no jump while falling")
}

func TestGroundedSnapVelocity(t *testing.T) {
	p := New(vmath.V3FZero, 0)
	p.Tick(dt)
	assert.InDelta(t, parameter.PlayerGravity*dt.Seconds(), p.VerticalVelocity(), 1e-9)
	p.Tick(dt)
	assert.InDelta(t, parameter.PlayerGroundedVelocity+parameter.PlayerGravity*dt.Seconds(), p.VerticalVelocity(), 1e-9)
	p.Tick(dt)
	assert.InDelta(t, parameter.PlayerGroundedVelocity+parameter.PlayerGravity*dt.Seconds(), p.VerticalVelocity(), 1e-9)
}

func TestFootstepsLoopWhileWalking(t *testing.T) {
	c := &controls{}
	steps := &footsteps{}
	clips := []string{parameter.ClipFootstepA, parameter.ClipFootstepB, parameter.ClipFootstepC}
	p := New(vmath.V3FZero, 0, WithControls(c), WithFootsteps(steps, clips...), WithRand(rand.New(rand.NewPCG(1, 1))))

	c.set(frame(nil, map[input.Axis]float64{input.AxisHorizontal: 1}))
	run(p, time.Second)
	require.Len(t, steps.plays, 1, "plays once then loops")
	assert.Contains(t, clips, steps.plays[0])
	assert.GreaterOrEqual(t, steps.pitches[0], parameter.PlayerStepPitchMin)
	assert.LessOrEqual(t, steps.pitches[0], parameter.PlayerStepPitchMax)

	c.idle()
	p.Tick(dt)
	assert.False(t, steps.playing)

	c.set(frame(nil, map[input.Axis]float64{input.AxisVertical: 0.05}))
	p.Tick(dt)
	assert.False(t, steps.playing, "below movement threshold")
}

func TestFootstepsStopInAir(t *testing.T) {
	c := &controls{}
	steps := &footsteps{}
	p := New(vmath.V3FZero, 0, WithControls(c), WithFootsteps(steps, parameter.ClipFootstepA))

	c.set(frame([]input.Action{input.ActionJump}, map[input.Axis]float64{input.AxisVertical: 1}))
	p.Tick(dt)
	assert.False(t, p.Grounded())
	assert.False(t, steps.playing)
	assert.Empty(t, steps.plays)
}

func TestEscapeReleasesLook(t *testing.T) {
	c := &controls{}
	p := New(vmath.V3FZero, 0, WithControls(c))
	assert.True(t, p.LookLocked())

	c.set(frame([]input.Action{input.ActionRelease}, nil))
	p.Tick(dt)
	assert.False(t, p.LookLocked())
}

func TestHandFollowsPlayer(t *testing.T) {
	p := New(vmath.Vec3F{X: 2}, 90)
	h := NewHand(p, DefaultHandOffset())

	pos := h.Position()
	// yawed 90: local +Z maps to +X, local +X maps to -Z
	assert.InDelta(t, 2+parameter.HandOffsetZ, pos.X, 1e-9)
	assert.InDelta(t, parameter.HandOffsetY, pos.Y, 1e-9)
	assert.InDelta(t, -parameter.HandOffsetX, pos.Z, 1e-9)
	assert.Equal(t, p.Rotation(), h.Rotation())
}

func TestHillGround(t *testing.T) {
	p := New(vmath.V3FZero, 0, WithGround(slope{}))
	p.Teleport(vmath.Vec3F{X: 3, Y: 5})
	run(p, 3*time.Second)
	assert.True(t, p.Grounded())
	assert.InDelta(t, 1.5, p.Position().Y, 1e-9)
}

type slope struct{}

func (slope) Height(x, _ float64) float64 { return x / 2 }
