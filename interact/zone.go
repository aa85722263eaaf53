package interact

import (
	"time"

	"github.com/lixenwraith/village/engine"
	"github.com/lixenwraith/village/engine/fsm"
	"github.com/lixenwraith/village/event"
	"github.com/lixenwraith/village/vmath"
)

// Timer ids used by the zone itself
const (
	timerTextClear = "text-clear"
)

// Transform is the zone's placement in the world
type Transform struct {
	Position vmath.Vec3F
	Rotation vmath.Quat
	Scale    float64
}

// Hooks are prefab callbacks run on lifecycle edges
// Requirement gates activation, nil always passes
type Hooks struct {
	OnReveal    func(z *Zone)
	OnActivate  func(z *Zone)
	OnResolve   func(z *Zone)
	Requirement func(z *Zone) bool
}

// ZoneOption attaches collaborators and behavior at registration
type ZoneOption func(*Zone)

// WithLight attaches a point light
func WithLight(l Light) ZoneOption {
	return func(z *Zone) { z.light = l }
}

// WithBody attaches renderer and collider toggles
func WithBody(b Body) ZoneOption {
	return func(z *Zone) { z.body = b }
}

// WithCarrier sets the attachment point used in carry mode
func WithCarrier(c Carrier) ZoneOption {
	return func(z *Zone) { z.carrier = c }
}

// WithHooks installs lifecycle callbacks
func WithHooks(h Hooks) ZoneOption {
	return func(z *Zone) { z.hooks = h }
}

// WithMotion adds continuous motions
func WithMotion(m ...Motion) ZoneOption {
	return func(z *Zone) { z.motions = append(z.motions, m...) }
}

// Zone is one interactable region and its runtime state
type Zone struct {
	ID        string
	Transform Transform

	cfg     Config
	ctrl    *Controller
	machine *fsm.Machine[*Zone]
	timers  engine.Timers

	light   Light
	body    Body
	carrier Carrier
	hooks   Hooks
	motions []Motion

	// Last evaluated actor distance, valid when hasActor
	distance float64
	hasActor bool

	activations int
	carried     bool
	removed     bool
}

// State returns the current lifecycle state
func (z *Zone) State() State {
	return z.machine.State()
}

// StateName returns the current state's name
func (z *Zone) StateName() string {
	return z.machine.StateName()
}

// TimeInState returns time spent in the current state
func (z *Zone) TimeInState() time.Duration {
	return z.machine.TimeInState()
}

// Config returns a copy of the authoring data
func (z *Zone) Config() Config {
	return z.cfg
}

// Distance returns the last evaluated actor distance
func (z *Zone) Distance() (float64, bool) {
	return z.distance, z.hasActor
}

// Activations counts entries into Activated, at most one per zone lifetime
func (z *Zone) Activations() int {
	return z.activations
}

// Carried reports whether the zone follows its carrier
func (z *Zone) Carried() bool {
	return z.carried
}

// Light returns the attached light, may be nil
func (z *Zone) Light() Light {
	return z.light
}

// Body returns the attached body, may be nil
func (z *Zone) Body() Body {
	return z.body
}

// Timers exposes the zone's one-shot timer table
func (z *Zone) Timers() *engine.Timers {
	return &z.timers
}

// After schedules fn on the zone's timer table
func (z *Zone) After(id string, d time.Duration, fn func()) {
	z.timers.After(id, d, fn)
}

// AddMotion adds a continuous motion after registration
func (z *Zone) AddMotion(m Motion) {
	z.motions = append(z.motions, m)
}

// ShowText writes text to the shared surface as this zone
// A positive d schedules a clear that only applies if the text is still ours
func (z *Zone) ShowText(text string, d time.Duration) {
	if text == "" {
		return
	}
	z.ctrl.requireSurface(z)
	z.ctrl.arbiter.Show(z.ID, text)
	if d > 0 {
		z.timers.After(timerTextClear, d, func() {
			z.ctrl.arbiter.ClearIf(z.ID, text)
		})
	}
}

// ClearText empties the surface if this zone owns it
func (z *Zone) ClearText() bool {
	return z.ctrl.arbiter.Clear(z.ID)
}

// OwnsText reports whether this zone wrote the current surface contents
func (z *Zone) OwnsText() bool {
	return z.ctrl.arbiter.Owner() == z.ID
}

// Burst fires a named particle burst
func (z *Zone) Burst(name string) {
	sink := z.ctrl.effects
	if sink == nil {
		z.ctrl.missing(z, "effects")
		return
	}
	sink.Burst(name)
	z.ctrl.emit(event.EventEffectFired, &event.EffectFiredPayload{ZoneID: z.ID, Kind: event.EffectBurst, Name: name})
}

// PlayClip plays a named audio clip
func (z *Zone) PlayClip(name string) {
	sink := z.ctrl.effects
	if sink == nil {
		z.ctrl.missing(z, "effects")
		return
	}
	sink.PlayClip(name)
	z.ctrl.emit(event.EventEffectFired, &event.EffectFiredPayload{ZoneID: z.ID, Kind: event.EffectClip, Name: name})
}

// StopClip cuts a playing clip short when the sink supports it
func (z *Zone) StopClip(name string) {
	if stopper, ok := z.ctrl.effects.(ClipStopper); ok {
		stopper.StopClip(name)
	}
}

// Emit publishes an event stamped with the controller tick
func (z *Zone) Emit(t event.EventType, payload any) {
	z.ctrl.emit(t, payload)
}

// follow copies the carrier transform
func (z *Zone) follow() {
	if z.carrier == nil {
		z.ctrl.missing(z, "carrier")
		return
	}
	z.Transform.Position = z.carrier.Position()
	z.Transform.Rotation = z.carrier.Rotation()
}

func (z *Zone) setLight(on bool) {
	if z.light == nil {
		z.ctrl.missing(z, "light")
		return
	}
	z.light.SetEnabled(on)
}
