package interact

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/vmath"
)

// PositionSource supplies the actor position each tick
type PositionSource interface {
	Position() vmath.Vec3F
}

// InputSource reports edge-triggered action presses for the current tick
type InputSource interface {
	Pressed(input.Action) bool
}

// TextSurface is the single shared message slot
type TextSurface interface {
	SetText(text string)
}

// TextSurfaceFunc adapts a function to TextSurface
type TextSurfaceFunc func(text string)

func (f TextSurfaceFunc) SetText(text string) { f(text) }

// Light is a point light attached to a zone
type Light interface {
	SetEnabled(on bool)
	Configure(c colorful.Color, intensity, rng float64)
}

// EffectSink plays one-shot presentation effects by name
type EffectSink interface {
	Burst(name string)
	PlayClip(name string)
}

// ClipStopper is optionally implemented by an EffectSink that can cut clips short
type ClipStopper interface {
	StopClip(name string)
}

// Carrier is the attachment point for carried zones
type Carrier interface {
	Position() vmath.Vec3F
	Rotation() vmath.Quat
}

// Body toggles the zone's visual and collision presence
type Body interface {
	SetVisible(on bool)
	SetSolid(on bool)
}
