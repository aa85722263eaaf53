package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Light is a point light the view reads back
type Light struct {
	enabled   bool
	color     colorful.Color
	intensity float64
	rng       float64
}

func (l *Light) SetEnabled(on bool) { l.enabled = on }

func (l *Light) Configure(c colorful.Color, intensity, rng float64) {
	l.color, l.intensity, l.rng = c, intensity, rng
}

func (l *Light) Enabled() bool         { return l.enabled }
func (l *Light) Color() colorful.Color { return l.color }
func (l *Light) Intensity() float64    { return l.intensity }
func (l *Light) Range() float64        { return l.rng }

// Body carries renderer and collider toggles plus an emissive material
type Body struct {
	visible  bool
	solid    bool
	emission colorful.Color
	glow     float64
}

func newBody() *Body { return &Body{visible: true, solid: true} }

func (b *Body) SetVisible(on bool) { b.visible = on }
func (b *Body) SetSolid(on bool)   { b.solid = on }

func (b *Body) SetEmission(c colorful.Color, intensity float64) {
	b.emission, b.glow = c, intensity
}

func (b *Body) Visible() bool { return b.visible }
func (b *Body) Solid() bool   { return b.solid }

// Emission returns the glow color and intensity, zero intensity means unlit
func (b *Body) Emission() (colorful.Color, float64) { return b.emission, b.glow }

// Bursts spawns named particle bursts
type Bursts interface {
	Burst(name string)
}

// Clips plays and stops named audio clips
type Clips interface {
	PlayClip(name string)
	StopClip(name string)
}

// Effects fans zone effects out to particles and audio, either may be nil
type Effects struct {
	Particles Bursts
	Audio     Clips
}

func (e Effects) Burst(name string) {
	if e.Particles != nil {
		e.Particles.Burst(name)
	}
}

func (e Effects) PlayClip(name string) {
	if e.Audio != nil {
		e.Audio.PlayClip(name)
	}
}

func (e Effects) StopClip(name string) {
	if e.Audio != nil {
		e.Audio.StopClip(name)
	}
}
