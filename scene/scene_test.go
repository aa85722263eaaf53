package scene

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/particle"
	"github.com/lixenwraith/village/player"
	"github.com/lixenwraith/village/prefab"
	"github.com/lixenwraith/village/vmath"
)

const dt = 100 * time.Millisecond

type keys struct{ interact bool }

func (k *keys) Pressed(a input.Action) bool { return a == input.ActionInteract && k.interact }

type surface struct{ text string }

func (s *surface) SetText(text string) { s.text = text }

type clips struct{ played, stopped []string }

func (c *clips) PlayClip(name string) { c.played = append(c.played, name) }
func (c *clips) StopClip(name string) { c.stopped = append(c.stopped, name) }

type village struct {
	scene     *Scene
	ctrl      *interact.Controller
	player    *player.Player
	keys      *keys
	surface   *surface
	clips     *clips
	particles *particle.System
}

func buildDefault(t *testing.T) *village {
	t.Helper()
	f := Default()
	start, yaw := f.Start()

	v := &village{keys: &keys{}, surface: &surface{}, clips: &clips{}}
	v.player = player.New(start, yaw)
	v.particles = particle.NewSystem(rand.New(rand.NewPCG(1, 1)), nil)
	v.ctrl = interact.NewController(
		interact.WithActor(v.player),
		interact.WithInput(v.keys),
		interact.WithSurface(v.surface),
		interact.WithEffects(Effects{Particles: v.particles, Audio: v.clips}),
	)

	s, err := Build(f, Deps{Controller: v.ctrl, Player: v.player, Particles: v.particles, Rand: rand.New(rand.NewPCG(2, 2))})
	require.NoError(t, err)
	v.scene = s
	return v
}

// visit stands on a zone and presses interact once it prompts
func (v *village) visit(t *testing.T, z *interact.Zone) {
	t.Helper()
	v.player.Teleport(z.Transform.Position)
	v.ctrl.Tick(dt)
	require.Equal(t, interact.StatePrompting, z.State(), "zone %s", z.ID)

	v.keys.interact = true
	v.ctrl.Tick(dt)
	v.keys.interact = false
}

func (v *village) object(id string) *Object {
	for _, o := range v.scene.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func TestDefaultScene(t *testing.T) {
	f := Default()
	assert.Equal(t, "Japanese Village", f.Settings.Name)
	assert.Len(t, f.Objects, 7)
	assert.Equal(t, interact.PolicyLastWriter, f.Policy())

	start, _ := f.Start()
	assert.Equal(t, -14.0, start.Z)
	assert.Equal(t, 0.8, f.HandOffset().Z)

	west := f.Objects[6]
	require.NotNil(t, west.Wind)
	assert.Equal(t, -1.0, west.Wind.config().Direction.X)
	assert.Equal(t, 4.0, west.Wind.config().GustInterval)
	assert.Equal(t, parameter.FlagWindStrength, west.Wind.config().Strength)
}

func TestParseRejectsBadScenes(t *testing.T) {
	cases := map[string]string{
		"unknown kind":   "[[object]]\nkind = \"pagoda\"\n",
		"short vector":   "[[object]]\nkind = \"book\"\nposition = [1.0, 2.0]\n",
		"unknown key":    "[[object]]\nkind = \"book\"\ncolour = \"red\"\n",
		"duplicate id":   "[[object]]\nid = \"a\"\nkind = \"book\"\n[[object]]\nid = \"a\"\nkind = \"flag\"\n",
		"bad policy":     "[settings]\npolicy = \"loudest\"\n",
		"negative scale": "[[object]]\nkind = \"book\"\nscale = -1.0\n",
		"not toml":       "[[object]\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("[[object]]\nkind = \"pagoda\"\n"))
	assert.ErrorIs(t, err, interact.ErrInvalidConfiguration)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/village.toml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "/nonexistent/village.toml"))
}

func TestBuildDefault(t *testing.T) {
	v := buildDefault(t)
	s := v.scene

	assert.Len(t, s.Objects, 7)
	assert.Len(t, s.Blades, 1)
	assert.Len(t, s.Displays, 1)
	assert.Len(t, s.Books, 1)
	assert.Len(t, s.Lanterns, 1)
	assert.Len(t, s.Statues, 1)
	assert.Len(t, s.Flags, 2)
	assert.NotNil(t, s.Hand)

	// Statues come last in evaluation order
	zones := v.ctrl.Zones()
	assert.Equal(t, prefab.KindStatue, zones[len(zones)-1].Config().Kind)

	blade := v.object("blade")
	require.NotNil(t, blade)
	assert.False(t, blade.Body.Visible(), "blade hides until revealed")
	assert.Nil(t, v.object("flag-east").Light)
}

func TestWalkThroughVillage(t *testing.T) {
	v := buildDefault(t)
	s := v.scene

	// Statue first, still waiting on the lantern
	statue := s.Statues[0]
	v.visit(t, statue.Zone())
	assert.Equal(t, interact.StatePrompting, statue.Zone().State())
	assert.False(t, statue.Rotating())

	// Light the offering
	lantern := s.Lanterns[0]
	v.visit(t, lantern.Zone())
	assert.True(t, lantern.Lit())
	assert.Equal(t, parameter.LanternResolvedText, v.surface.text)
	assert.Equal(t, int64(parameter.PetalCount+parameter.FlareCount), v.particles.Created())
	assert.Contains(t, v.clips.played, parameter.ClipLanternLight)
	assert.True(t, v.object("offering").Light.Enabled())

	// Now the statue turns
	v.visit(t, statue.Zone())
	assert.True(t, statue.Rotating())
	assert.Contains(t, v.clips.played, parameter.ClipStatueGrind)

	statue.StopRotation()
	assert.Contains(t, v.clips.stopped, parameter.ClipStatueGrind)

	// Pick up the blade, it follows the hand
	blade := s.Blades[0]
	v.visit(t, blade.Zone())
	assert.True(t, blade.HasBlade())
	assert.False(t, v.object("blade").Body.Solid())

	v.player.Teleport(vmath.Vec3F{X: 3, Z: -2})
	v.ctrl.Tick(dt)
	assert.Equal(t, s.Hand.Position(), blade.Zone().Transform.Position)
}

func TestStatueWithUnknownLanternBuilds(t *testing.T) {
	f, err := Parse([]byte(`
[[object]]
id = "statue"
kind = "statue"
require_lantern = true
lantern = "missing"
`))
	require.NoError(t, err)

	ctrl := interact.NewController()
	s, err := Build(f, Deps{Controller: ctrl})
	require.NoError(t, err)
	require.Len(t, s.Statues, 1)
	assert.Nil(t, s.Hand)
}

func TestBuildNeedsController(t *testing.T) {
	_, err := Build(Default(), Deps{})
	assert.ErrorIs(t, err, interact.ErrMissingCollaborator)
}

func TestEffectsNilSafe(t *testing.T) {
	var e Effects
	e.Burst("x")
	e.PlayClip("x")
	e.StopClip("x")
}
