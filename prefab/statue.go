package prefab

import (
	"log/slog"

	"github.com/lixenwraith/village/event"
	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

const KindStatue = "statue"

const timerFollowUp = "follow-up"

// Statue starts turning forever once activated, optionally only after the lantern is lit
type Statue struct {
	zone *interact.Zone
	spin *interact.Spin
	log  *slog.Logger
}

// NewStatue registers the statue
// With requireLantern set the statue activates only once lantern is lit,
// and never when lantern is nil
func NewStatue(ctrl *interact.Controller, at Placement, parts Parts, requireLantern bool, lantern *Lantern, log *slog.Logger) (*Statue, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Statue{
		spin: &interact.Spin{Axis: vmath.V3FUp, Speed: parameter.StatueRotationSpeed, World: true},
		log:  log,
	}

	cfg := interact.Config{
		Kind:          KindStatue,
		TriggerRadius: parameter.StatueRadius,
		Action:        input.ActionInteract,
		PromptText:    parameter.StatuePromptText,
		ResolvedText:  parameter.StatueResolvedText,
		FollowUpText:  parameter.StatueFollowUpText,
		ActivateClips: []string{parameter.ClipStatueGrind},
	}
	at.apply(&cfg)

	hooks := interact.Hooks{OnActivate: s.activate}
	if requireLantern {
		hooks.Requirement = func(*interact.Zone) bool {
			return lantern != nil && lantern.Lit()
		}
	}

	z, err := ctrl.Add(cfg, parts.options(interact.WithHooks(hooks), interact.WithMotion(s.spin))...)
	if err != nil {
		return nil, err
	}
	s.zone = z
	return s, nil
}

// Zone returns the underlying zone
func (s *Statue) Zone() *interact.Zone { return s.zone }

// Rotating reports whether the statue is turning
func (s *Statue) Rotating() bool { return s.spin.Running() }

// Spin returns the statue's rotation
func (s *Statue) Spin() *interact.Spin { return s.spin }

func (s *Statue) activate(z *interact.Zone) {
	s.spin.Start()
	z.After(timerFollowUp, parameter.StatueFollowUpDelay, func() {
		z.ShowText(z.Config().FollowUpText, parameter.StatueFollowUpTextDuration)
	})
}

// StopRotation halts the spin and the grinding clip
// The zone stays Activated, so the statue cannot be activated again
func (s *Statue) StopRotation() {
	s.spin.Stop()
	s.zone.StopClip(parameter.ClipStatueGrind)
	s.zone.Emit(event.EventMotionStopped, &event.MotionStoppedPayload{ZoneID: s.zone.ID})
	s.log.Info("statue rotation stopped", slog.String("zone", s.zone.ID))
}
