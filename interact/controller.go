package interact

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/village/engine/fsm"
	"github.com/lixenwraith/village/event"
	"github.com/lixenwraith/village/vmath"
)

// Controller evaluates every zone against the actor once per tick
// Not safe for concurrent use, Tick runs on the loop goroutine only
type Controller struct {
	actor   PositionSource
	input   InputSource
	effects EffectSink
	arbiter *Arbiter
	events  *event.EventQueue
	log     *slog.Logger

	zones []*Zone
	byID  map[string]*Zone

	elapsed time.Duration
	tick    uint64

	// warned holds zone/collaborator pairs already reported missing
	warned map[string]struct{}
}

// Option configures a Controller
type Option func(*Controller)

// WithActor sets the tracked actor
func WithActor(p PositionSource) Option {
	return func(c *Controller) { c.actor = p }
}

// WithInput sets the per-tick input source
func WithInput(in InputSource) Option {
	return func(c *Controller) { c.input = in }
}

// WithSurface sets the shared text surface
func WithSurface(s TextSurface) Option {
	return func(c *Controller) { c.arbiter.SetSurface(s) }
}

// WithEffects sets the particle and audio sink
func WithEffects(e EffectSink) Option {
	return func(c *Controller) { c.effects = e }
}

// WithEvents publishes transitions, text writes and effects to q
func WithEvents(q *event.EventQueue) Option {
	return func(c *Controller) { c.events = q }
}

// WithLogger sets the diagnostics logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPolicy sets the text arbitration policy
func WithPolicy(p Policy) Option {
	return func(c *Controller) { c.arbiter.SetPolicy(p) }
}

// NewController creates an empty controller
func NewController(opts ...Option) *Controller {
	c := &Controller{
		arbiter: NewArbiter(nil, PolicyLastWriter),
		log:     slog.Default(),
		byID:    make(map[string]*Zone),
		warned:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.arbiter.onChange = func(owner, text string) {
		c.emit(event.EventTextChanged, &event.TextChangedPayload{Owner: owner, Text: text})
	}
	return c
}

// SetActor replaces the tracked actor, nil detaches it
func (c *Controller) SetActor(p PositionSource) { c.actor = p }

// SetInput replaces the input source
func (c *Controller) SetInput(in InputSource) { c.input = in }

// SetEffects replaces the effect sink
func (c *Controller) SetEffects(e EffectSink) { c.effects = e }

// SetSurface replaces the text surface
func (c *Controller) SetSurface(s TextSurface) { c.arbiter.SetSurface(s) }

// SetPolicy changes the text arbitration policy
func (c *Controller) SetPolicy(p Policy) { c.arbiter.SetPolicy(p) }

// Arbiter exposes the text surface arbiter
func (c *Controller) Arbiter() *Arbiter { return c.arbiter }

// Elapsed returns the total simulated time
func (c *Controller) Elapsed() time.Duration { return c.elapsed }

// Ticks returns the number of completed ticks
func (c *Controller) Ticks() uint64 { return c.tick }

// Add registers a zone in the Dormant state
// The zone is evaluated after all previously added zones
func (c *Controller) Add(cfg Config, opts ...ZoneOption) (*Zone, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, exists := c.byID[cfg.ID]; exists {
		return nil, fmt.Errorf("%w: duplicate zone id %q", ErrInvalidConfiguration, cfg.ID)
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	if cfg.Rotation == (vmath.Quat{}) {
		cfg.Rotation = vmath.QIdentity
	}

	z := &Zone{
		ID:        cfg.ID,
		Transform: Transform{Position: cfg.Position, Rotation: cfg.Rotation, Scale: cfg.Scale},
		cfg:       cfg,
		ctrl:      c,
	}
	for _, opt := range opts {
		opt(z)
	}

	m, err := buildMachine(z)
	if err != nil {
		return nil, fmt.Errorf("zone %q: %w", cfg.ID, err)
	}
	m.SetObserver(c.onTransition)
	z.machine = m
	if err := m.Init(z, StateDormant); err != nil {
		return nil, fmt.Errorf("zone %q: %w", cfg.ID, err)
	}

	if cfg.Disabled() {
		c.log.Debug("zone disabled, non-positive trigger radius", slog.String("zone", cfg.ID), slog.Float64("radius", cfg.TriggerRadius))
	}
	if cfg.HiddenUntilReveal && z.body != nil {
		z.body.SetVisible(false)
	}
	if z.light != nil {
		z.light.Configure(cfg.Light.Color, cfg.Light.Intensity, cfg.Light.Range)
		switch cfg.Light.Mode {
		case LightAlways:
			z.light.SetEnabled(true)
		case LightOnReveal, LightOnActivate:
			z.light.SetEnabled(false)
		}
	}

	c.zones = append(c.zones, z)
	c.byID[z.ID] = z
	return z, nil
}

// Remove drops a zone, its pending timers are discarded without firing
func (c *Controller) Remove(id string) bool {
	z, ok := c.byID[id]
	if !ok {
		return false
	}
	delete(c.byID, id)
	for i, candidate := range c.zones {
		if candidate == z {
			c.zones = append(c.zones[:i], c.zones[i+1:]...)
			break
		}
	}
	z.timers.Clear()
	z.removed = true
	c.arbiter.Clear(id)
	return true
}

// Zone looks up a zone by id
func (c *Controller) Zone(id string) (*Zone, bool) {
	z, ok := c.byID[id]
	return z, ok
}

// Zones returns the zones in evaluation order
func (c *Controller) Zones() []*Zone {
	out := make([]*Zone, len(c.zones))
	copy(out, c.zones)
	return out
}

// Activate runs the activation path without a key press
func (c *Controller) Activate(id string) error {
	z, ok := c.byID[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	switch z.State() {
	case StateActivated, StateResolved:
		return fmt.Errorf("%w: zone %q already %s", ErrRedundantTransition, id, z.StateName())
	case StatePrompting:
	default:
		return fmt.Errorf("%w: zone %q is %s", ErrNotPrompting, id, z.StateName())
	}
	if !z.machine.HandleTrigger(z, TriggerActivate) {
		return fmt.Errorf("%w: zone %q", ErrRequirementUnmet, id)
	}
	return nil
}

// Tick advances every zone by dt
// Order: timer tables, then per zone in declaration order the lifecycle
// machine, prompt request, carry follow and motions, then prompt arbitration
func (c *Controller) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	c.tick++

	var hasActor bool
	if c.actor != nil {
		hasActor = true
	} else {
		c.missing(nil, "actor")
	}

	// Snapshot so hooks may add or remove zones mid-tick
	zones := c.Zones()

	// Timers run first so a timer scheduled during evaluation starts
	// counting on the next tick, measuring time since it was scheduled
	for _, z := range zones {
		if !z.removed {
			z.timers.Advance(dt)
		}
	}

	for _, z := range zones {
		if z.removed {
			continue
		}
		if z.State() != StateResolved {
			z.hasActor = hasActor
			if hasActor {
				z.distance = distanceTo(c.actor, z)
			}
			z.machine.Update(z, dt)
			if z.State() == StatePrompting {
				c.requireSurface(z)
				c.arbiter.Request(z.ID, z.cfg.PromptText, z.distance)
			}
		}
		if z.carried && z.State() == StateActivated {
			z.follow()
		}
		for _, m := range z.motions {
			m.Step(z, c.elapsed, dt)
		}
	}
	c.arbiter.Flush()
}

func distanceTo(p PositionSource, z *Zone) float64 {
	return vmath.V3FDist(p.Position(), z.Transform.Position)
}

func (c *Controller) onTransition(z *Zone, from, to fsm.StateID) {
	c.log.Debug("zone transition",
		slog.String("zone", z.ID),
		slog.String("from", StateName(from)),
		slog.String("to", StateName(to)),
	)
	c.emit(event.EventZoneTransition, &event.ZoneTransitionPayload{
		ZoneID: z.ID,
		From:   StateName(from),
		To:     StateName(to),
	})
}

func (c *Controller) emit(t event.EventType, payload any) {
	if c.events == nil {
		return
	}
	c.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: c.tick})
}

func (c *Controller) requireSurface(z *Zone) {
	if c.arbiter.surface == nil {
		c.missing(z, "surface")
	}
}

// missing reports a skipped side effect once per zone and collaborator
func (c *Controller) missing(z *Zone, what string) {
	key := what
	zoneID := ""
	if z != nil {
		zoneID = z.ID
		key = z.ID + "/" + what
	}
	if _, seen := c.warned[key]; seen {
		return
	}
	c.warned[key] = struct{}{}
	c.log.Debug("side effect skipped",
		slog.String("zone", zoneID),
		slog.String("collaborator", what),
		slog.Any("error", ErrMissingCollaborator),
	)
}
