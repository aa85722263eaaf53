package input

import (
	"fmt"
	"strings"
)

// Action is a logical, edge-triggered button
type Action uint8

const (
	ActionNone Action = iota
	ActionInteract
	ActionJump
	ActionRelease
	ActionQuit
	ActionPause
	actionCount
)

// Axis is a logical analog input in [-1, 1]
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
	AxisLookX
	AxisLookY
	axisCount
)

// actionRegistry maps canonical action names to actions
// Used by the scene loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	"none":     ActionNone,
	"interact": ActionInteract,
	"jump":     ActionJump,
	"release":  ActionRelease,
	"quit":     ActionQuit,
	"pause":    ActionPause,
}

// ParseAction resolves an action name, empty resolves to ActionNone
func ParseAction(name string) (Action, error) {
	if name == "" {
		return ActionNone, nil
	}
	if a, ok := actionRegistry[strings.ToLower(name)]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// String returns the canonical action name
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}
