package interact

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/vmath"
)

type fakeActor struct {
	pos vmath.Vec3F
}

func (a *fakeActor) Position() vmath.Vec3F { return a.pos }

func (a *fakeActor) at(x float64) { a.pos = vmath.Vec3F{X: x} }

type fakeInput struct {
	pressed map[input.Action]bool
}

func (in *fakeInput) Pressed(a input.Action) bool { return in.pressed[a] }

func (in *fakeInput) press(a input.Action) {
	if in.pressed == nil {
		in.pressed = make(map[input.Action]bool)
	}
	in.pressed[a] = true
}

func (in *fakeInput) release() { in.pressed = nil }

type recordSurface struct {
	text   string
	writes []string
}

func (s *recordSurface) SetText(text string) {
	s.text = text
	s.writes = append(s.writes, text)
}

func (s *recordSurface) count(text string) int {
	n := 0
	for _, w := range s.writes {
		if w == text {
			n++
		}
	}
	return n
}

type fakeLight struct {
	enabled   bool
	color     colorful.Color
	intensity float64
	rng       float64
	toggles   []bool
}

func (l *fakeLight) SetEnabled(on bool) {
	l.enabled = on
	l.toggles = append(l.toggles, on)
}

func (l *fakeLight) Configure(c colorful.Color, intensity, rng float64) {
	l.color = c
	l.intensity = intensity
	l.rng = rng
}

type fakeSink struct {
	bursts  []string
	clips   []string
	stopped []string
}

func (s *fakeSink) Burst(name string)    { s.bursts = append(s.bursts, name) }
func (s *fakeSink) PlayClip(name string) { s.clips = append(s.clips, name) }
func (s *fakeSink) StopClip(name string) { s.stopped = append(s.stopped, name) }

type fakeBody struct {
	visible bool
	solid   bool
}

func (b *fakeBody) SetVisible(on bool) { b.visible = on }
func (b *fakeBody) SetSolid(on bool)   { b.solid = on }

type fakeCarrier struct {
	pos vmath.Vec3F
	rot vmath.Quat
}

func (c *fakeCarrier) Position() vmath.Vec3F { return c.pos }
func (c *fakeCarrier) Rotation() vmath.Quat  { return c.rot }
