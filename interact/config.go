package interact

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/vmath"
)

// LightMode selects when a zone's light is lit
type LightMode uint8

const (
	// LightNone leaves the light untouched
	LightNone LightMode = iota
	// LightAlways lights at registration
	LightAlways
	// LightOnReveal lights at reveal and goes dark on activation
	LightOnReveal
	// LightOnActivate lights on activation
	LightOnActivate
)

// LightSpec configures the zone light
type LightSpec struct {
	Mode      LightMode
	Color     colorful.Color
	Intensity float64
	Range     float64
}

// Config is the authoring data of one zone
type Config struct {
	// ID is stable across the session, generated when empty
	ID   string
	Kind string

	Position vmath.Vec3F
	Rotation vmath.Quat
	Scale    float64

	TriggerRadius float64
	// SecondaryRadius is the prompt range, 0 uses TriggerRadius
	SecondaryRadius float64

	// Action is polled while prompting, ActionNone disables prompting
	Action input.Action

	PromptText   string
	RevealText   string
	ResolvedText string
	FollowUpText string

	// Zero durations leave the text until something replaces it
	RevealTextDuration   time.Duration
	ResolvedTextDuration time.Duration

	// ResolveAfter moves an Activated zone to Resolved, 0 never resolves
	ResolveAfter time.Duration

	// HiddenUntilReveal hides the body until reveal
	HiddenUntilReveal bool
	// SolidUntilActivate disables the collider on activation
	SolidUntilActivate bool

	// Carry attaches the zone to the carrier on activation
	Carry      bool
	CarryScale float64

	Light LightSpec

	RevealBursts   []string
	ActivateBursts []string
	ActivateClips  []string
}

// PromptRadius returns the effective prompt range
func (c *Config) PromptRadius() float64 {
	if c.SecondaryRadius > 0 {
		return c.SecondaryRadius
	}
	return c.TriggerRadius
}

// Disabled reports whether the zone can never reveal
func (c *Config) Disabled() bool {
	return c.TriggerRadius <= 0
}

// Validate rejects configurations the controller cannot run
// A non-positive radius is not an error, the zone is simply disabled
func (c *Config) Validate() error {
	switch {
	case c.RevealTextDuration < 0:
		return fmt.Errorf("%w: zone %q negative reveal text duration", ErrInvalidConfiguration, c.ID)
	case c.ResolvedTextDuration < 0:
		return fmt.Errorf("%w: zone %q negative resolved text duration", ErrInvalidConfiguration, c.ID)
	case c.ResolveAfter < 0:
		return fmt.Errorf("%w: zone %q negative resolve delay", ErrInvalidConfiguration, c.ID)
	case c.CarryScale < 0:
		return fmt.Errorf("%w: zone %q negative carry scale", ErrInvalidConfiguration, c.ID)
	case c.Scale < 0:
		return fmt.Errorf("%w: zone %q negative scale", ErrInvalidConfiguration, c.ID)
	}
	return nil
}
