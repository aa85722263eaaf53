package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/village/audio"
	"github.com/lixenwraith/village/config"
	"github.com/lixenwraith/village/engine"
	"github.com/lixenwraith/village/event"
	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/logger"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/particle"
	"github.com/lixenwraith/village/player"
	"github.com/lixenwraith/village/render"
	"github.com/lixenwraith/village/scene"
	"github.com/lixenwraith/village/status"
)

var (
	sceneFlag  = flag.String("scene", "", "Scene TOML file, empty uses the built-in village")
	tickFlag   = flag.Duration("tick", parameter.GameUpdateInterval, "Tick interval")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	policyFlag = flag.String("policy", "", "Text policy: last-writer, nearest (default from scene)")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "village: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log, closeLog, err := logger.Open(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	file := scene.Default()
	if *sceneFlag != "" {
		if file, err = scene.Load(*sceneFlag); err != nil {
			return err
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	log.Info("starting", slog.Uint64("seed", seed), slog.String("scene", file.Settings.Name))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVILLAGE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	switch *colorFlag {
	case "256":
		render.TrueColor = false
	case "truecolor", "true", "24bit":
		render.TrueColor = true
	default:
		render.TrueColor = screen.Colors() > 256
	}

	// Audio falls back to silent mode when no device opens
	sound := audio.NewEngine(&audio.Config{
		SampleRate: parameter.AudioSampleRate,
		BufferTime: parameter.AudioBufferTime,
		Volume:     parameter.AudioVolume,
		Muted:      *muteFlag,
	}, audio.WithLogger(log), audio.WithRand(child(rng)))
	if err := sound.Start(); err != nil {
		log.Warn("audio start failed, continuing without audio", "error", err)
	}
	defer sound.Stop()

	latch := input.NewLatch(nil, input.DefaultHold)
	start, yaw := file.Start()
	p := player.New(start, yaw,
		player.WithControls(latch),
		player.WithGround(player.FlatGround(file.Settings.Ground)),
		player.WithFootsteps(sound.Footsteps(), parameter.ClipFootstepA, parameter.ClipFootstepB, parameter.ClipFootstepC),
		player.WithRand(child(rng)),
		player.WithLogger(log),
	)

	particles := particle.NewSystem(child(rng), log)
	events := event.NewEventQueue()
	bar := render.NewMessageBar()

	ctrl := interact.NewController(
		interact.WithActor(p),
		interact.WithInput(latch),
		interact.WithSurface(bar),
		interact.WithEffects(scene.Effects{Particles: particles, Audio: sound}),
		interact.WithEvents(events),
		interact.WithLogger(log),
	)

	world, err := scene.Build(file, scene.Deps{Controller: ctrl, Player: p, Particles: particles, Rand: child(rng), Log: log})
	if err != nil {
		return err
	}
	if *policyFlag != "" {
		policy, err := interact.ParsePolicy(*policyFlag)
		if err != nil {
			return err
		}
		ctrl.SetPolicy(policy)
	}

	clock := engine.NewPausableClock(nil)
	hud := &hud{scene: world, sound: sound, metrics: status.NewRegistry()}

	objects := render.ObjectsFunc(func() []*scene.Object { return world.Objects })
	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(render.GridRenderer{}, render.LayerGrid)
	orchestrator.Register(render.LightRenderer{Source: objects}, render.LayerLight)
	orchestrator.Register(render.ObjectRenderer{Source: objects}, render.LayerObjects)
	orchestrator.Register(render.ParticleRenderer{Source: particles}, render.LayerParticles)
	orchestrator.Register(render.PlayerRenderer{Actor: p}, render.LayerPlayer)
	orchestrator.Register(render.StatusBar{Text: hud.status}, render.LayerHUD)
	orchestrator.Register(bar, render.LayerHUD)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var resized atomic.Bool
	go input.Pump(ctx, screen, input.DefaultKeyTable(), latch, input.Hooks{
		OnResize: func() { resized.Store(true) },
		OnAction: func(a input.Action) {
			switch a {
			case input.ActionQuit:
				stop()
			case input.ActionPause:
				if clock.IsPaused() {
					clock.Resume()
					return
				}
				clock.Pause()
				showPaused(screen)
			}
		},
	})

	loop := engine.NewLoop(clock, *tickFlag, log)
	loop.Add(
		engine.TickFunc(func(time.Duration) { latch.Snapshot() }),
		p,
		ctrl,
		particles,
		engine.TickFunc(func(time.Duration) {
			if resized.CompareAndSwap(true, false) {
				orchestrator.Resize()
			}
			w, h := orchestrator.Size()
			orchestrator.RenderFrame(render.NewRenderContext(w, h, p.Position(), ctrl.Elapsed(), clock.IsPaused()))
		}),
		engine.TickFunc(func(time.Duration) {
			for _, ev := range events.Consume() {
				hud.observe(ev)
				log.Debug("event", slog.String("event", ev.String()))
			}
		}),
	)

	return loop.Run(ctx)
}

// child derives an independent generator so subsystems do not share state
func child(rng *rand.Rand) *rand.Rand {
	return rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
}

// showPaused marks the status bar directly, no frame is rendered while paused
func showPaused(screen tcell.Screen) {
	style := tcell.StyleDefault.Foreground(render.ToTCell(render.ColorMessageFg)).Background(render.ToTCell(render.ColorStatusBg))
	for i, r := range parameter.PausedStr {
		screen.SetContent(1+i, 0, r, nil, style)
	}
	screen.Show()
}

// hud assembles the status line from scene state and recent events
type hud struct {
	scene   *scene.Scene
	sound   *audio.Engine
	metrics *status.Registry
	last    string
}

func (h *hud) observe(ev event.GameEvent) {
	h.metrics.Observe(ev)
	if ev.Type == event.EventZoneTransition || ev.Type == event.EventMotionStopped {
		h.last = ev.String()
	}
}

func (h *hud) status(ctx render.RenderContext) string {
	var b strings.Builder
	if ctx.IsPaused {
		b.WriteString(parameter.PausedStr)
	}
	if h.sound.IsEnabled() {
		b.WriteString(parameter.AudioStr)
	}
	for _, blade := range h.scene.Blades {
		if blade.HasBlade() {
			b.WriteString(parameter.BladeStr)
		}
	}
	fmt.Fprintf(&b, "%s  %5.1fs  %d/%d activated", h.scene.Name, ctx.Elapsed.Seconds(),
		h.metrics.Ints.Get("state.Activated").Load(), len(h.scene.Objects))
	for _, l := range h.scene.Lanterns {
		if l.Lit() {
			b.WriteString("  lantern lit")
		}
	}
	for _, s := range h.scene.Statues {
		if s.Rotating() {
			b.WriteString("  statue turning")
		}
	}
	if h.last != "" {
		b.WriteString("  | ")
		b.WriteString(h.last)
	}
	return b.String()
}
