package interact

import (
	"log/slog"

	"github.com/lixenwraith/village/engine/fsm"
	"github.com/lixenwraith/village/input"
)

// buildMachine wires the zone lifecycle graph
// Transitions are listed in priority order, activation is tried before leaving
func buildMachine(z *Zone) (*fsm.Machine[*Zone], error) {
	m := fsm.NewMachine[*Zone]()
	nodes := make(map[State]*fsm.Node[*Zone], 5)
	for _, s := range []State{StateDormant, StateRevealed, StatePrompting, StateActivated, StateResolved} {
		nodes[s] = m.AddState(s, StateName(s))
	}
	nodes[StateActivated].OnEnter = append(nodes[StateActivated].OnEnter, (*Zone).enterActivated)
	nodes[StateResolved].OnEnter = append(nodes[StateResolved].OnEnter, (*Zone).enterResolved)

	edges := []edge{
		{StateDormant, fsm.Transition[*Zone]{TargetID: StateRevealed, Guard: inTrigger, Action: (*Zone).reveal}},
		{StateRevealed, fsm.Transition[*Zone]{TargetID: StatePrompting, Guard: fsm.All[*Zone](canPrompt, inPrompt)}},
		{StatePrompting, fsm.Transition[*Zone]{TargetID: StateActivated, Guard: fsm.All[*Zone](inPrompt, actionPressed, requirementMet)}},
		{StatePrompting, fsm.Transition[*Zone]{TargetID: StateActivated, Trigger: TriggerActivate, Guard: requirementMet}},
		{StatePrompting, fsm.Transition[*Zone]{TargetID: StateRevealed, Guard: fsm.Not[*Zone](inPrompt), Action: (*Zone).leavePrompt}},
	}
	if z.cfg.ResolveAfter > 0 {
		edges = append(edges, edge{StateActivated, fsm.Transition[*Zone]{TargetID: StateResolved, Guard: fsm.StateTimeExceeds[*Zone](z.cfg.ResolveAfter)}})
	}

	for _, e := range edges {
		if err := m.AddTransition(e.from, e.t); err != nil {
			return nil, err
		}
	}
	return m, nil
}

type edge struct {
	from State
	t    fsm.Transition[*Zone]
}

func inTrigger(z *Zone, _ *fsm.Machine[*Zone]) bool {
	return z.hasActor && !z.cfg.Disabled() && z.distance <= z.cfg.TriggerRadius
}

func inPrompt(z *Zone, _ *fsm.Machine[*Zone]) bool {
	r := z.cfg.PromptRadius()
	return z.hasActor && r > 0 && z.distance <= r
}

func canPrompt(z *Zone, _ *fsm.Machine[*Zone]) bool {
	return z.cfg.Action != input.ActionNone
}

func actionPressed(z *Zone, _ *fsm.Machine[*Zone]) bool {
	src := z.ctrl.input
	if src == nil {
		z.ctrl.missing(z, "input")
		return false
	}
	return src.Pressed(z.cfg.Action)
}

func requirementMet(z *Zone, _ *fsm.Machine[*Zone]) bool {
	return z.hooks.Requirement == nil || z.hooks.Requirement(z)
}

// reveal runs once on Dormant -> Revealed
func (z *Zone) reveal() {
	z.ctrl.log.Info("zone revealed", slog.String("zone", z.ID), slog.String("kind", z.cfg.Kind), slog.Float64("distance", z.distance))

	if z.cfg.HiddenUntilReveal {
		if z.body == nil {
			z.ctrl.missing(z, "body")
		} else {
			z.body.SetVisible(true)
		}
	}
	if z.cfg.Light.Mode == LightOnReveal {
		z.setLight(true)
	}
	z.ShowText(z.cfg.RevealText, z.cfg.RevealTextDuration)
	for _, name := range z.cfg.RevealBursts {
		z.Burst(name)
	}
	if z.hooks.OnReveal != nil {
		z.hooks.OnReveal(z)
	}
}

// leavePrompt runs on Prompting -> Revealed
func (z *Zone) leavePrompt() {
	z.ctrl.arbiter.ClearIf(z.ID, z.cfg.PromptText)
}

// enterActivated runs once on entry into Activated
func (z *Zone) enterActivated() {
	z.activations++
	z.ctrl.log.Info("zone activated", slog.String("zone", z.ID), slog.String("kind", z.cfg.Kind))

	switch z.cfg.Light.Mode {
	case LightOnReveal:
		z.setLight(false)
	case LightOnActivate:
		z.setLight(true)
	}

	if z.cfg.SolidUntilActivate || z.cfg.Carry {
		if z.body == nil {
			z.ctrl.missing(z, "body")
		} else {
			z.body.SetSolid(false)
		}
	}

	if z.cfg.Carry {
		z.carried = true
		if z.cfg.CarryScale > 0 {
			z.Transform.Scale *= z.cfg.CarryScale
		}
		z.follow()
	}

	for _, name := range z.cfg.ActivateBursts {
		z.Burst(name)
	}
	for _, name := range z.cfg.ActivateClips {
		z.PlayClip(name)
	}

	if z.cfg.ResolvedText != "" {
		z.ShowText(z.cfg.ResolvedText, z.cfg.ResolvedTextDuration)
	} else {
		z.ctrl.arbiter.ClearIf(z.ID, z.cfg.PromptText)
	}

	if z.hooks.OnActivate != nil {
		z.hooks.OnActivate(z)
	}
}

func (z *Zone) enterResolved() {
	z.ctrl.log.Debug("zone resolved", slog.String("zone", z.ID))
	if z.hooks.OnResolve != nil {
		z.hooks.OnResolve(z)
	}
}
