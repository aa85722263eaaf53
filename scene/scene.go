// Package scene loads a village description and builds its prefabs into
// an interaction controller.
package scene

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/particle"
	"github.com/lixenwraith/village/player"
	"github.com/lixenwraith/village/prefab"
	"github.com/lixenwraith/village/vmath"
)

// Object is one built prefab as seen by the view
type Object struct {
	ID    string
	Kind  string
	Zone  *interact.Zone
	Light *Light
	Body  *Body
}

// Scene holds everything Build created
type Scene struct {
	Name   string
	Ground player.Ground
	Hand   *player.Hand

	Objects []*Object

	Blades   []*prefab.Blade
	Displays []*prefab.BladeDisplay
	Spinners []*interact.Spin
	Books    []*prefab.Book
	Lanterns []*prefab.Lantern
	Statues  []*prefab.Statue
	Flags    []*prefab.Flag
}

// Deps are the collaborators Build wires prefabs into
type Deps struct {
	Controller *interact.Controller
	Player     *player.Player
	// Particles receives the lantern emitters, may be nil
	Particles *particle.System
	Rand      *rand.Rand
	Log       *slog.Logger
}

// Start returns the player's start position and heading
func (f *File) Start() (vmath.Vec3F, float64) {
	pos, _ := vec(f.Player.Position, vmath.Vec3F{})
	return pos, f.Player.Yaw
}

// HandOffset returns the carry offset relative to the player
func (f *File) HandOffset() vmath.Vec3F {
	off, _ := vec(f.Player.HandOffset, player.DefaultHandOffset())
	return off
}

// Policy returns the scene's text arbitration policy
func (f *File) Policy() interact.Policy {
	p, _ := interact.ParsePolicy(f.Settings.Policy)
	return p
}

// Build creates every object in f
// Statues are built last so they can find their lantern by id
func Build(f *File, deps Deps) (*Scene, error) {
	if deps.Controller == nil {
		return nil, fmt.Errorf("%w: scene needs a controller", interact.ErrMissingCollaborator)
	}
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &Scene{
		Name:   f.Settings.Name,
		Ground: player.FlatGround(f.Settings.Ground),
	}
	if deps.Player != nil {
		s.Hand = player.NewHand(deps.Player, f.HandOffset())
	}
	deps.Controller.SetPolicy(f.Policy())

	b := &builder{scene: s, ctrl: deps.Controller, rng: rng, log: log, lanterns: make(map[string]*prefab.Lantern)}
	for _, o := range f.Objects {
		if o.Kind == prefab.KindStatue {
			continue
		}
		if err := b.build(o); err != nil {
			return nil, err
		}
	}
	for _, o := range f.Objects {
		if o.Kind != prefab.KindStatue {
			continue
		}
		if err := b.build(o); err != nil {
			return nil, err
		}
	}

	if deps.Particles != nil {
		anchor := vmath.Vec3F{}
		if len(s.Lanterns) > 0 {
			anchor = s.Lanterns[0].Zone().Transform.Position
		}
		deps.Particles.Register(particle.BlossomConfig(), anchor)
		deps.Particles.Register(particle.FlareConfig(), anchor)
	}

	log.Info("scene built", slog.String("scene", s.Name), slog.Int("objects", len(s.Objects)))
	return s, nil
}

type builder struct {
	scene    *Scene
	ctrl     *interact.Controller
	rng      *rand.Rand
	log      *slog.Logger
	lanterns map[string]*prefab.Lantern
	first    *prefab.Lantern
}

func (b *builder) build(o ObjectSpec) error {
	at := o.placement()
	light, body := &Light{}, newBody()
	parts := prefab.Parts{Light: light, Body: body}

	var (
		z   *interact.Zone
		err error
	)
	switch o.Kind {
	case prefab.KindBlade:
		if b.scene.Hand != nil {
			parts.Carrier = b.scene.Hand
		}
		var blade *prefab.Blade
		if blade, err = prefab.NewBlade(b.ctrl, at, parts); err == nil {
			b.scene.Blades = append(b.scene.Blades, blade)
			z = blade.Zone()
		}
	case prefab.KindBladeDisplay:
		var d *prefab.BladeDisplay
		if d, err = prefab.NewBladeDisplay(b.ctrl, at, parts, o.Spinning); err == nil {
			b.scene.Displays = append(b.scene.Displays, d)
			z = d.Zone()
		}
	case prefab.KindSpinner:
		speed := o.Speed
		if speed == 0 {
			speed = parameter.BladeSpinSpeed
		}
		var spin *interact.Spin
		if z, spin, err = prefab.NewSpinner(b.ctrl, at, speed); err == nil {
			b.scene.Spinners = append(b.scene.Spinners, spin)
			light = nil
		}
	case prefab.KindBook:
		var book *prefab.Book
		if book, err = prefab.NewBook(b.ctrl, at, parts); err == nil {
			b.scene.Books = append(b.scene.Books, book)
			z = book.Zone()
		}
	case prefab.KindLantern:
		var l *prefab.Lantern
		if l, err = prefab.NewLantern(b.ctrl, at, parts); err == nil {
			b.scene.Lanterns = append(b.scene.Lanterns, l)
			b.lanterns[l.Zone().ID] = l
			if b.first == nil {
				b.first = l
			}
			z = l.Zone()
		}
	case prefab.KindStatue:
		lantern := b.first
		if o.Lantern != "" {
			lantern = b.lanterns[o.Lantern]
		}
		if o.RequireLantern && lantern == nil {
			b.log.Warn("statue requires a lantern that is not in the scene, it will never activate",
				slog.String("statue", o.ID), slog.String("lantern", o.Lantern))
		}
		var st *prefab.Statue
		if st, err = prefab.NewStatue(b.ctrl, at, parts, o.RequireLantern, lantern, b.log); err == nil {
			b.scene.Statues = append(b.scene.Statues, st)
			z = st.Zone()
		}
	case prefab.KindFlag:
		var fl *prefab.Flag
		if fl, err = prefab.NewFlag(b.ctrl, at, o.Wind.config(), b.rng); err == nil {
			b.scene.Flags = append(b.scene.Flags, fl)
			z = fl.Zone()
			light = nil
		}
	}
	if err != nil {
		return fmt.Errorf("object %q (%s): %w", o.ID, o.Kind, err)
	}

	b.scene.Objects = append(b.scene.Objects, &Object{ID: z.ID, Kind: o.Kind, Zone: z, Light: light, Body: body})
	return nil
}
