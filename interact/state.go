package interact

import "github.com/lixenwraith/village/engine/fsm"

// State is a zone lifecycle state
type State = fsm.StateID

const (
	StateDormant State = iota + 1
	StateRevealed
	StatePrompting
	StateActivated
	StateResolved
)

// TriggerActivate is the external trigger used by Controller.Activate
const TriggerActivate fsm.Trigger = 1

var stateNames = map[State]string{
	StateDormant:   "Dormant",
	StateRevealed:  "Revealed",
	StatePrompting: "Prompting",
	StateActivated: "Activated",
	StateResolved:  "Resolved",
}

// StateName returns the display name of a state
func StateName(s State) string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "None"
}

// AllowedEdges lists every legal state change
var AllowedEdges = [][2]State{
	{StateDormant, StateRevealed},
	{StateRevealed, StatePrompting},
	{StatePrompting, StateRevealed},
	{StatePrompting, StateActivated},
	{StateActivated, StateResolved},
}

// IsAllowedEdge reports whether from -> to is a legal state change
func IsAllowedEdge(from, to State) bool {
	for _, e := range AllowedEdges {
		if e[0] == from && e[1] == to {
			return true
		}
	}
	return false
}
