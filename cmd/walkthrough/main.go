// Command walkthrough walks a scripted player through a scene without a
// terminal and prints every interaction event.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lixenwraith/village/config"
	"github.com/lixenwraith/village/engine"
	"github.com/lixenwraith/village/event"
	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/logger"
	"github.com/lixenwraith/village/particle"
	"github.com/lixenwraith/village/player"
	"github.com/lixenwraith/village/prefab"
	"github.com/lixenwraith/village/scene"
	"github.com/lixenwraith/village/status"
	"github.com/lixenwraith/village/vmath"
)

var (
	sceneFlag  = flag.String("scene", "", "Scene TOML file, empty uses the built-in village")
	stepFlag   = flag.Duration("step", 50*time.Millisecond, "Simulated tick length")
	seedFlag   = flag.Uint64("seed", 1, "Random seed")
	policyFlag = flag.String("policy", "", "Text policy: last-writer, nearest (default from scene)")
)

const (
	arriveRadius = 1.0
	maxTicks     = 20000
)

func main() {
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg, os.Stderr)

	file := scene.Default()
	if *sceneFlag != "" {
		var err error
		if file, err = scene.Load(*sceneFlag); err != nil {
			fmt.Fprintf(os.Stderr, "walkthrough: %v\n", err)
			os.Exit(1)
		}
	}

	opts := options{step: *stepFlag, seed: *seedFlag, policy: *policyFlag, log: log}
	if err := run(os.Stdout, file, opts); err != nil {
		fmt.Fprintf(os.Stderr, "walkthrough: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	step   time.Duration
	seed   uint64
	policy string
	log    *slog.Logger
}

// waypoint is one visit in the script
type waypoint struct {
	object   *scene.Object
	interact bool
	wait     time.Duration
}

// pilot steers the player toward each waypoint and presses interact on arrival
type pilot struct {
	player *player.Player
	route  []waypoint
	index  int

	press   bool
	waiting time.Duration
	arrived bool
	h, v    float64
}

func (p *pilot) Pressed(a input.Action) bool { return a == input.ActionInteract && p.press }

func (p *pilot) Axis(a input.Axis) float64 {
	switch a {
	case input.AxisHorizontal:
		return p.h
	case input.AxisVertical:
		return p.v
	}
	return 0
}

func (p *pilot) done() bool { return p.index >= len(p.route) }

// plan decides this tick's input before anything moves
func (p *pilot) plan(dt time.Duration) {
	p.press, p.h, p.v = false, 0, 0
	if p.done() {
		return
	}
	wp := p.route[p.index]

	if p.arrived {
		p.waiting -= dt
		if p.waiting <= 0 {
			p.index++
			p.arrived = false
		}
		return
	}

	delta := vmath.V3FHorizontal(vmath.V3FSub(wp.object.Zone.Transform.Position, p.player.Position()))
	dist := vmath.V3FMag(delta)
	if dist <= arriveRadius {
		p.arrived = true
		p.press = wp.interact
		p.waiting = wp.wait
		return
	}

	// Heading stays at yaw 0, so world X is strafe and world Z is forward
	scale := math.Min(1, dist) / dist
	p.h, p.v = delta.X*scale, delta.Z*scale
}

// route visits displays, books, lanterns, statues, then picks up blades
func route(s *scene.Scene) []waypoint {
	order := []string{prefab.KindBladeDisplay, prefab.KindBook, prefab.KindLantern, prefab.KindStatue, prefab.KindBlade}
	waits := map[string]time.Duration{prefab.KindStatue: 4 * time.Second}

	var r []waypoint
	for _, kind := range order {
		for _, o := range s.Objects {
			if o.Kind != kind {
				continue
			}
			wait, ok := waits[kind]
			if !ok {
				wait = time.Second
			}
			r = append(r, waypoint{object: o, interact: kind != prefab.KindBladeDisplay, wait: wait})
		}
	}
	return r
}

func run(w io.Writer, file *scene.File, opts options) error {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed+1))
	if opts.step <= 0 {
		opts.step = 50 * time.Millisecond
	}

	pl := &pilot{}
	start, _ := file.Start()
	p := player.New(start, 0,
		player.WithControls(pl),
		player.WithGround(player.FlatGround(file.Settings.Ground)),
		player.WithRand(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))),
		player.WithLogger(opts.log),
	)
	pl.player = p

	particles := particle.NewSystem(rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())), opts.log)
	events := event.NewEventQueue()
	ctrl := interact.NewController(
		interact.WithActor(p),
		interact.WithInput(pl),
		interact.WithSurface(interact.TextSurfaceFunc(func(string) {})),
		interact.WithEffects(scene.Effects{Particles: particles}),
		interact.WithEvents(events),
		interact.WithLogger(opts.log),
	)

	s, err := scene.Build(file, scene.Deps{Controller: ctrl, Player: p, Particles: particles, Rand: rng, Log: opts.log})
	if err != nil {
		return err
	}
	if opts.policy != "" {
		policy, err := interact.ParsePolicy(opts.policy)
		if err != nil {
			return err
		}
		ctrl.SetPolicy(policy)
	}
	pl.route = route(s)
	metrics := status.NewRegistry()

	loop := engine.NewLoop(engine.NewPausableClock(nil), opts.step, opts.log)
	loop.Add(
		engine.TickFunc(pl.plan),
		p,
		ctrl,
		particles,
		engine.TickFunc(func(time.Duration) {
			for _, ev := range events.Consume() {
				metrics.Observe(ev)
				if ev.Type == event.EventEffectFired {
					continue
				}
				fmt.Fprintf(w, "%8.2fs %s\n", ctrl.Elapsed().Seconds(), ev)
			}
		}),
	)

	for !pl.done() {
		if loop.Ticks() >= maxTicks {
			return fmt.Errorf("script did not finish after %d ticks", maxTicks)
		}
		loop.Step(opts.step)
	}

	metrics.Floats.Get("elapsed").Set(ctrl.Elapsed().Seconds())
	metrics.Ints.Get("ticks").Store(int64(loop.Ticks()))
	metrics.Ints.Get("events.dropped").Store(int64(events.Dropped()))
	summarize(w, s, particles, metrics)
	return nil
}

func summarize(w io.Writer, s *scene.Scene, particles *particle.System, metrics *status.Registry) {
	fmt.Fprintln(w, "---")
	for _, b := range s.Blades {
		fmt.Fprintf(w, "blade %s carried: %t\n", b.Zone().ID, b.HasBlade())
	}
	for _, l := range s.Lanterns {
		fmt.Fprintf(w, "lantern %s lit: %t\n", l.Zone().ID, l.Lit())
	}
	for _, st := range s.Statues {
		fmt.Fprintf(w, "statue %s rotating: %t (%.0f°)\n", st.Zone().ID, st.Rotating(), st.Spin().Degrees())
	}
	fmt.Fprintf(w, "particles spawned: %d\n", particles.Created())
	fmt.Fprintln(w, "---")
	for _, line := range metrics.Lines() {
		fmt.Fprintln(w, line)
	}
}
