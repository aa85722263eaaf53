package prefab

import (
	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

const (
	KindBlade        = "blade"
	KindBladeDisplay = "blade-display"
	KindSpinner      = "spinner"
)

// Blade is hidden until the player comes near, then can be picked up into the hand
type Blade struct {
	zone *interact.Zone
}

// NewBlade registers a pickup blade
func NewBlade(ctrl *interact.Controller, at Placement, parts Parts) (*Blade, error) {
	cfg := interact.Config{
		Kind:                 KindBlade,
		TriggerRadius:        parameter.BladeRevealRadius,
		SecondaryRadius:      parameter.BladePickupRadius,
		Action:               input.ActionInteract,
		RevealText:           parameter.BladeRevealText,
		RevealTextDuration:   parameter.BladeRevealTextDuration,
		PromptText:           parameter.BladePromptText,
		ResolvedText:         parameter.BladeResolvedText,
		ResolvedTextDuration: parameter.BladeResolvedTextDuration,
		HiddenUntilReveal:    true,
		Carry:                true,
		CarryScale:           parameter.BladeCarryScale,
		Light: interact.LightSpec{
			Mode:      interact.LightOnReveal,
			Color:     hex(parameter.ColorBladeLight),
			Intensity: parameter.BladeLightIntensity,
			Range:     parameter.BladeLightRange,
		},
	}
	at.apply(&cfg)

	z, err := ctrl.Add(cfg, parts.options()...)
	if err != nil {
		return nil, err
	}
	return &Blade{zone: z}, nil
}

// Zone returns the underlying zone
func (b *Blade) Zone() *interact.Zone { return b.zone }

// HasBlade reports whether the blade was picked up
func (b *Blade) HasBlade() bool {
	return b.zone.Carried()
}

// BladeDisplay is a reveal-only blade that glows once seen and never prompts
type BladeDisplay struct {
	zone *interact.Zone
	spin *interact.Spin
}

// NewBladeDisplay registers a display blade, spinning adds the constant X rotation
func NewBladeDisplay(ctrl *interact.Controller, at Placement, parts Parts, spinning bool) (*BladeDisplay, error) {
	cfg := interact.Config{
		Kind:              KindBladeDisplay,
		TriggerRadius:     parameter.BladeRevealRadius,
		HiddenUntilReveal: true,
		Light: interact.LightSpec{
			Mode:      interact.LightOnReveal,
			Color:     hex(parameter.ColorBladeLight),
			Intensity: parameter.BladeDisplayLightIntensity,
			Range:     parameter.BladeLightRange,
		},
	}
	at.apply(&cfg)

	d := &BladeDisplay{}
	extra := []interact.ZoneOption{interact.WithHooks(interact.Hooks{
		OnReveal: func(z *interact.Zone) {
			setEmission(z.Body(), hex(parameter.ColorBladeLight), parameter.BladeDisplayEmission)
		},
	})}
	if spinning {
		d.spin = Spinner(parameter.BladeSpinSpeed)
		extra = append(extra, interact.WithMotion(d.spin))
	}

	z, err := ctrl.Add(cfg, parts.options(extra...)...)
	if err != nil {
		return nil, err
	}
	d.zone = z
	return d, nil
}

// Zone returns the underlying zone
func (d *BladeDisplay) Zone() *interact.Zone { return d.zone }

// Revealed reports whether the display blade has been seen
func (d *BladeDisplay) Revealed() bool {
	return d.zone.State() != interact.StateDormant
}

// Spin returns the display rotation, nil when not spinning
func (d *BladeDisplay) Spin() *interact.Spin { return d.spin }

// Spinner returns a running local X rotation
func Spinner(speed float64) *interact.Spin {
	return interact.NewSpin(vmath.V3FRight, speed, true)
}

// NewSpinner registers a zone that only spins, it never reveals
func NewSpinner(ctrl *interact.Controller, at Placement, speed float64) (*interact.Zone, *interact.Spin, error) {
	cfg := interact.Config{Kind: KindSpinner}
	at.apply(&cfg)
	spin := Spinner(speed)
	z, err := ctrl.Add(cfg, interact.WithMotion(spin))
	if err != nil {
		return nil, nil, err
	}
	return z, spin, nil
}
