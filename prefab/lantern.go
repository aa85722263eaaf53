package prefab

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
)

const KindLantern = "lantern"

// Lantern is an offering that lights up, sheds petals and flickers in celebration
type Lantern struct {
	zone  *interact.Zone
	color colorful.Color
	lit   bool

	flickers int
}

// NewLantern registers an offering lantern
func NewLantern(ctrl *interact.Controller, at Placement, parts Parts) (*Lantern, error) {
	l := &Lantern{color: hex(parameter.ColorLanternGlow)}
	cfg := interact.Config{
		Kind:                 KindLantern,
		TriggerRadius:        parameter.LanternRadius,
		Action:               input.ActionInteract,
		PromptText:           parameter.LanternPromptText,
		ResolvedText:         parameter.LanternResolvedText,
		ResolvedTextDuration: parameter.LanternResolvedTextDuration,
		ResolveAfter:         parameter.LanternResolvedTextDuration,
		Light: interact.LightSpec{
			Mode:      interact.LightOnActivate,
			Color:     l.color,
			Intensity: parameter.LanternLightIntensity,
			Range:     parameter.LanternLightRange,
		},
		ActivateClips:  []string{parameter.ClipLanternLight},
		ActivateBursts: []string{parameter.BurstLanternFlare, parameter.BurstBlossoms},
	}
	at.apply(&cfg)

	z, err := ctrl.Add(cfg, parts.options(interact.WithHooks(interact.Hooks{OnActivate: l.light}))...)
	if err != nil {
		return nil, err
	}
	l.zone = z
	setEmission(parts.Body, l.color, 0)
	return l, nil
}

// Zone returns the underlying zone
func (l *Lantern) Zone() *interact.Zone { return l.zone }

// Lit reports whether the lantern has been lit
func (l *Lantern) Lit() bool { return l.lit }

// Flickers returns completed celebration flashes
func (l *Lantern) Flickers() int { return l.flickers }

func (l *Lantern) light(z *interact.Zone) {
	l.lit = true
	setEmission(z.Body(), l.color, parameter.LanternEmissionIntensity)
	l.flash(z, 0)
}

// flash boosts the light, then restores it and schedules the next flash
func (l *Lantern) flash(z *interact.Zone, n int) {
	if n >= parameter.LanternFlickerCount {
		return
	}
	light := z.Light()
	if light == nil {
		return
	}
	light.Configure(l.color, parameter.LanternLightIntensity*parameter.LanternFlickerBoost, parameter.LanternLightRange)
	z.After(fmt.Sprintf("flicker-%d", n), parameter.LanternFlickerStep, func() {
		light.Configure(l.color, parameter.LanternLightIntensity, parameter.LanternLightRange)
		l.flickers++
		z.After(fmt.Sprintf("flicker-gap-%d", n), parameter.LanternFlickerStep, func() {
			l.flash(z, n+1)
		})
	})
}
