// Package player moves the first-person actor through the village.
package player

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

// Controls is the per-tick input the player reads
type Controls interface {
	Pressed(input.Action) bool
	Axis(input.Axis) float64
}

// Ground reports the terrain height under a horizontal point
type Ground interface {
	Height(x, z float64) float64
}

// FlatGround is a level plane at a fixed height
type FlatGround float64

func (g FlatGround) Height(_, _ float64) float64 { return float64(g) }

// Footsteps is a single looping footstep channel
type Footsteps interface {
	Playing() bool
	Play(clip string, pitch float64)
	Stop()
}

// Player is the walking actor, it supplies the position zones are measured from
type Player struct {
	pos   vmath.Vec3F
	yaw   float64
	pitch float64
	velY  float64

	grounded   bool
	lookLocked bool

	controls Controls
	ground   Ground
	steps    Footsteps
	clips    []string
	rng      *rand.Rand
	log      *slog.Logger

	// lastMove is the horizontal displacement direction of the last tick
	lastMove vmath.Vec3F
}

// Option configures a Player
type Option func(*Player)

// WithControls sets the input source
func WithControls(c Controls) Option { return func(p *Player) { p.controls = c } }

// WithGround sets the terrain, default is flat ground at zero
func WithGround(g Ground) Option { return func(p *Player) { p.ground = g } }

// WithFootsteps sets the footstep channel and the clips to pick from
func WithFootsteps(f Footsteps, clips ...string) Option {
	return func(p *Player) {
		p.steps = f
		p.clips = clips
	}
}

// WithRand sets the random source used for footstep variation
func WithRand(r *rand.Rand) Option { return func(p *Player) { p.rng = r } }

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a player standing at start facing yaw degrees
func New(start vmath.Vec3F, yaw float64, opts ...Option) *Player {
	p := &Player{
		pos:        start,
		yaw:        yaw,
		lookLocked: true,
		ground:     FlatGround(0),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if p.pos.Y <= p.ground.Height(p.pos.X, p.pos.Z) {
		p.pos.Y = p.ground.Height(p.pos.X, p.pos.Z)
		p.grounded = true
	}
	return p
}

// Position returns the player's feet position
func (p *Player) Position() vmath.Vec3F { return p.pos }

// Rotation returns the body rotation, yaw only
func (p *Player) Rotation() vmath.Quat { return vmath.QFromAxisAngle(vmath.V3FUp, p.yaw) }

// ViewRotation includes the camera pitch
func (p *Player) ViewRotation() vmath.Quat {
	return vmath.QMul(p.Rotation(), vmath.QFromAxisAngle(vmath.V3FRight, p.pitch))
}

// Yaw returns the heading in degrees
func (p *Player) Yaw() float64 { return p.yaw }

// Pitch returns the camera pitch in degrees, positive looks down
func (p *Player) Pitch() float64 { return p.pitch }

// Grounded reports whether the player stood on the ground after the last tick
func (p *Player) Grounded() bool { return p.grounded }

// LookLocked reports whether look input is captured, Escape releases it
func (p *Player) LookLocked() bool { return p.lookLocked }

// VerticalVelocity returns the current vertical speed
func (p *Player) VerticalVelocity() float64 { return p.velY }

// Teleport moves the player without physics
func (p *Player) Teleport(pos vmath.Vec3F) {
	p.pos = pos
	p.velY = 0
}

// Tick advances movement, look, jump, gravity and footsteps by dt
func (p *Player) Tick(dt time.Duration) {
	sec := dt.Seconds()
	move := p.move(sec)
	p.look(sec)
	p.jump()
	p.applyGravity(sec)
	p.footsteps(move)

	if p.controls != nil && p.controls.Pressed(input.ActionRelease) && p.lookLocked {
		p.lookLocked = false
		p.log.Debug("look released")
	}
}

// move returns the horizontal movement vector used for footsteps
func (p *Player) move(sec float64) vmath.Vec3F {
	if p.controls == nil {
		p.lastMove = vmath.V3FZero
		return p.lastMove
	}
	h := p.controls.Axis(input.AxisHorizontal)
	v := p.controls.Axis(input.AxisVertical)

	rot := p.Rotation()
	right := vmath.QRotate(rot, vmath.V3FRight)
	fwd := vmath.QRotate(rot, vmath.V3FForward)
	move := vmath.V3FAdd(vmath.V3FScale(right, h), vmath.V3FScale(fwd, v))

	p.pos = vmath.V3FAdd(p.pos, vmath.V3FScale(move, parameter.PlayerMoveSpeed*sec))
	p.lastMove = vmath.V3FHorizontal(move)
	return p.lastMove
}

func (p *Player) look(sec float64) {
	if p.controls == nil {
		return
	}
	rate := parameter.PlayerLookSensitivity * parameter.PlayerLookRate * sec
	p.yaw = math.Mod(p.yaw+p.controls.Axis(input.AxisLookX)*rate, 360)
	p.pitch = vmath.Clamp(p.pitch-p.controls.Axis(input.AxisLookY)*rate, -parameter.PlayerPitchLimit, parameter.PlayerPitchLimit)
}

func (p *Player) jump() {
	if p.controls == nil || !p.grounded || !p.controls.Pressed(input.ActionJump) {
		return
	}
	p.velY = math.Sqrt(parameter.PlayerJumpHeight * -2 * parameter.PlayerGravity)
	p.log.Debug("player jumped")
}

func (p *Player) applyGravity(sec float64) {
	if p.grounded && p.velY < 0 {
		p.velY = parameter.PlayerGroundedVelocity
	}
	p.velY += parameter.PlayerGravity * sec
	p.pos.Y += p.velY * sec

	floor := p.ground.Height(p.pos.X, p.pos.Z)
	if p.pos.Y <= floor {
		p.pos.Y = floor
		p.grounded = true
	} else {
		p.grounded = false
	}
}

func (p *Player) footsteps(move vmath.Vec3F) {
	if p.steps == nil {
		return
	}
	if p.grounded && vmath.V3FMag(move) > parameter.PlayerStepThreshold {
		if !p.steps.Playing() && len(p.clips) > 0 {
			clip := p.clips[p.rng.IntN(len(p.clips))]
			pitch := parameter.PlayerStepPitchMin + p.rng.Float64()*(parameter.PlayerStepPitchMax-parameter.PlayerStepPitchMin)
			p.steps.Play(clip, pitch)
		}
		return
	}
	p.steps.Stop()
}
