package prefab

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/village/event"
	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

const dt = 100 * time.Millisecond

type actor struct{ pos vmath.Vec3F }

func (a *actor) Position() vmath.Vec3F { return a.pos }

type keys struct{ interact bool }

func (k *keys) Pressed(a input.Action) bool { return a == input.ActionInteract && k.interact }

type surface struct{ text string }

func (s *surface) SetText(text string) { s.text = text }

type light struct {
	on        bool
	intensity float64
	history   []float64
}

func (l *light) SetEnabled(on bool) { l.on = on }
func (l *light) Configure(_ colorful.Color, intensity, _ float64) {
	l.intensity = intensity
	l.history = append(l.history, intensity)
}

type body struct {
	visible  bool
	solid    bool
	emission float64
}

func (b *body) SetVisible(on bool)                      { b.visible = on }
func (b *body) SetSolid(on bool)                        { b.solid = on }
func (b *body) SetEmission(_ colorful.Color, i float64) { b.emission = i }

type sink struct {
	bursts  []string
	clips   []string
	stopped []string
}

func (s *sink) Burst(name string)    { s.bursts = append(s.bursts, name) }
func (s *sink) PlayClip(name string) { s.clips = append(s.clips, name) }
func (s *sink) StopClip(name string) { s.stopped = append(s.stopped, name) }

type world struct {
	ctrl    *interact.Controller
	actor   *actor
	keys    *keys
	surface *surface
	sink    *sink
	events  *event.EventQueue
}

func newWorld() *world {
	w := &world{actor: &actor{}, keys: &keys{}, surface: &surface{}, sink: &sink{}, events: event.NewEventQueue()}
	w.ctrl = interact.NewController(
		interact.WithActor(w.actor),
		interact.WithInput(w.keys),
		interact.WithSurface(w.surface),
		interact.WithEffects(w.sink),
		interact.WithEvents(w.events),
	)
	return w
}

func (w *world) goTo(p vmath.Vec3F) { w.actor.pos = p }

func (w *world) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += dt {
		w.ctrl.Tick(dt)
	}
}

func (w *world) press() {
	w.keys.interact = true
	w.ctrl.Tick(dt)
	w.keys.interact = false
}

func TestBladePickup(t *testing.T) {
	w := newWorld()
	l, b := &light{}, &body{visible: true, solid: true}
	hand := &carrier{pos: vmath.Vec3F{X: 0.35, Y: 1.2, Z: 0.5}}
	blade, err := NewBlade(w.ctrl, Placement{ID: "blade", Position: vmath.Vec3F{X: 10}}, Parts{Light: l, Body: b, Carrier: hand})
	require.NoError(t, err)

	w.goTo(vmath.Vec3F{X: 6})
	w.run(dt)
	assert.Equal(t, interact.StateRevealed, blade.Zone().State())
	assert.Equal(t, parameter.BladeRevealText, w.surface.text)
	assert.True(t, l.on)
	assert.Equal(t, parameter.BladeLightIntensity, l.intensity)

	w.goTo(vmath.Vec3F{X: 8})
	w.run(dt)
	assert.Equal(t, parameter.BladePromptText, w.surface.text)
	assert.False(t, blade.HasBlade())

	w.press()
	assert.True(t, blade.HasBlade())
	assert.False(t, l.on)
	assert.False(t, b.solid)
	assert.Equal(t, hand.pos, blade.Zone().Transform.Position)
	assert.Equal(t, parameter.BladeResolvedText, w.surface.text)

	w.run(parameter.BladeResolvedTextDuration)
	assert.Empty(t, w.surface.text)
}

type carrier struct {
	pos vmath.Vec3F
}

func (c *carrier) Position() vmath.Vec3F { return c.pos }
func (c *carrier) Rotation() vmath.Quat  { return vmath.QIdentity }

func TestBladeDisplayRevealsAndSpins(t *testing.T) {
	w := newWorld()
	l, b := &light{}, &body{}
	d, err := NewBladeDisplay(w.ctrl, Placement{ID: "display", Position: vmath.Vec3F{Z: 4}}, Parts{Light: l, Body: b}, true)
	require.NoError(t, err)

	w.goTo(vmath.Vec3F{Z: 20})
	w.run(time.Second)
	assert.False(t, d.Revealed())
	assert.False(t, b.visible)
	assert.InDelta(t, parameter.BladeSpinSpeed, d.Spin().Degrees(), 1e-6, "spins regardless of distance")

	w.goTo(vmath.Vec3F{})
	w.press()
	assert.True(t, d.Revealed())
	assert.True(t, b.visible)
	assert.True(t, l.on)
	assert.Equal(t, parameter.BladeDisplayEmission, b.emission)
	assert.Equal(t, interact.StateRevealed, d.Zone().State(), "display never prompts")
}

func TestBookRevealsClueAndRises(t *testing.T) {
	w := newWorld()
	l, b := &light{}, &body{}
	book, err := NewBook(w.ctrl, Placement{ID: "book", Position: vmath.Vec3F{X: 2, Y: 1}}, Parts{Light: l, Body: b})
	require.NoError(t, err)
	assert.Equal(t, parameter.BookGlowIntensity, b.emission)

	w.goTo(vmath.Vec3F{X: 20})
	w.run(time.Second)
	lo, hi := parameter.BookLightIntensity*(1-parameter.BookPulseAmplitude), parameter.BookLightIntensity*(1+parameter.BookPulseAmplitude)
	for _, v := range l.history {
		assert.GreaterOrEqual(t, v, lo-1e-9)
		assert.LessOrEqual(t, v, hi+1e-9)
	}

	w.goTo(vmath.Vec3F{X: 1})
	w.run(dt)
	assert.Equal(t, parameter.BookPromptText, w.surface.text)

	w.press()
	assert.True(t, book.ClueRevealed())
	assert.Equal(t, parameter.BookResolvedText, w.surface.text)
	assert.InDelta(t, parameter.BookLightIntensity*parameter.BookRevealBoost, l.intensity, 1e-9)

	w.run(parameter.BookResolvedTextDuration)
	assert.Empty(t, w.surface.text)
	assert.Equal(t, interact.StateResolved, book.Zone().State())
	assert.False(t, book.Rising())
	assert.Equal(t, 1+parameter.BookRiseHeight, book.Zone().Transform.Position.Y)
	assert.InDelta(t, parameter.BookLightIntensity*parameter.BookRevealBoost, l.intensity, 1e-9, "pulse stops after reveal")
}

func TestLanternLightsAndFlickers(t *testing.T) {
	w := newWorld()
	l, b := &light{}, &body{emission: 9}
	lantern, err := NewLantern(w.ctrl, Placement{ID: "lantern"}, Parts{Light: l, Body: b})
	require.NoError(t, err)
	assert.False(t, l.on)
	assert.Zero(t, b.emission)

	w.goTo(vmath.Vec3F{X: 2})
	w.run(dt)
	assert.Equal(t, parameter.LanternPromptText, w.surface.text)

	w.press()
	assert.True(t, lantern.Lit())
	assert.True(t, l.on)
	assert.Equal(t, parameter.LanternEmissionIntensity, b.emission)
	assert.Equal(t, []string{parameter.ClipLanternLight}, w.sink.clips)
	assert.Equal(t, []string{parameter.BurstLanternFlare, parameter.BurstBlossoms}, w.sink.bursts)
	assert.Equal(t, parameter.LanternResolvedText, w.surface.text)
	assert.InDelta(t, parameter.LanternLightIntensity*parameter.LanternFlickerBoost, l.intensity, 1e-9)

	w.run(2 * time.Second)
	assert.Equal(t, parameter.LanternFlickerCount, lantern.Flickers())
	assert.Equal(t, parameter.LanternLightIntensity, l.intensity)

	w.run(3 * time.Second)
	assert.Empty(t, w.surface.text)
	assert.Equal(t, interact.StateResolved, lantern.Zone().State())
}

func TestStatueRequiresLitLantern(t *testing.T) {
	w := newWorld()
	lantern, err := NewLantern(w.ctrl, Placement{ID: "lantern", Position: vmath.Vec3F{X: -20}}, Parts{})
	require.NoError(t, err)
	statue, err := NewStatue(w.ctrl, Placement{ID: "statue"}, Parts{}, true, lantern, nil)
	require.NoError(t, err)

	w.goTo(vmath.Vec3F{X: 1})
	w.run(dt)
	w.press()
	assert.Equal(t, interact.StatePrompting, statue.Zone().State())
	assert.False(t, statue.Rotating())

	w.goTo(vmath.Vec3F{X: -19})
	w.run(dt)
	w.press()
	require.True(t, lantern.Lit())

	w.goTo(vmath.Vec3F{X: 1})
	w.run(dt)
	w.press()
	assert.Equal(t, interact.StateActivated, statue.Zone().State())
	assert.True(t, statue.Rotating())
	assert.Equal(t, parameter.StatueResolvedText, w.surface.text)
	assert.Contains(t, w.sink.clips, parameter.ClipStatueGrind)
}

func TestStatueWithoutLanternNeverActivates(t *testing.T) {
	w := newWorld()
	statue, err := NewStatue(w.ctrl, Placement{ID: "statue"}, Parts{}, true, nil, nil)
	require.NoError(t, err)

	w.goTo(vmath.Vec3F{X: 1})
	w.run(dt)
	w.press()
	assert.Equal(t, interact.StatePrompting, statue.Zone().State())
}

func TestStatueMessagesAndStopRotation(t *testing.T) {
	w := newWorld()
	statue, err := NewStatue(w.ctrl, Placement{ID: "statue"}, Parts{}, false, nil, nil)
	require.NoError(t, err)

	w.goTo(vmath.Vec3F{X: 1})
	w.run(dt)
	w.press()
	start := statue.Zone().Transform.Rotation

	w.goTo(vmath.Vec3F{X: 100})
	w.run(time.Second)
	assert.InDelta(t, parameter.StatueRotationSpeed, vmath.QAngle(start, statue.Zone().Transform.Rotation), 1e-6)
	assert.Equal(t, parameter.StatueResolvedText, w.surface.text)

	w.run(2 * time.Second)
	assert.Equal(t, parameter.StatueFollowUpText, w.surface.text)

	w.run(parameter.StatueFollowUpTextDuration)
	assert.Empty(t, w.surface.text)

	w.events.Consume()
	statue.StopRotation()
	assert.False(t, statue.Rotating())
	assert.Equal(t, []string{parameter.ClipStatueGrind}, w.sink.stopped)
	assert.Equal(t, interact.StateActivated, statue.Zone().State(), "stop leaves the statue activated")

	evs := w.events.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventMotionStopped, evs[0].Type)

	rot := statue.Zone().Transform.Rotation
	w.goTo(vmath.Vec3F{X: 1})
	w.press()
	assert.Equal(t, rot, statue.Zone().Transform.Rotation, "cannot be reactivated")
}

func TestFlagSwaysAroundBase(t *testing.T) {
	w := newWorld()
	base := vmath.Vec3F{X: 3, Y: 4}
	flag, err := NewFlag(w.ctrl, Placement{ID: "flag", Position: base}, interact.DefaultWindConfig(), rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)

	moved := false
	for i := 0; i < 50; i++ {
		w.ctrl.Tick(dt)
		p := flag.Zone().Transform.Position
		assert.Equal(t, base.Y, p.Y, "wind offsets along its direction only")
		if p != base {
			moved = true
		}
	}
	assert.True(t, moved)
	assert.Equal(t, interact.StateDormant, flag.Zone().State())
}
