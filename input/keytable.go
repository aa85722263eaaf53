package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorAction
	BehaviorAxis
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Behavior KeyBehavior
	Action   Action
	Axis     Axis
	Value    float64
}

// KeyTable maps terminal keys to logical input
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

func action(a Action) KeyEntry { return KeyEntry{Behavior: BehaviorAction, Action: a} }

func axis(a Axis, v float64) KeyEntry { return KeyEntry{Behavior: BehaviorAxis, Axis: a, Value: v} }

// DefaultKeyTable returns the default key bindings
// WASD walks, arrows look, space jumps, e interacts
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  action(ActionQuit),
			tcell.KeyCtrlQ:  action(ActionQuit),
			tcell.KeyEscape: action(ActionRelease),
			tcell.KeyLeft:   axis(AxisLookX, -1),
			tcell.KeyRight:  axis(AxisLookX, 1),
			tcell.KeyUp:     axis(AxisLookY, 1),
			tcell.KeyDown:   axis(AxisLookY, -1),
		},
		Runes: map[rune]KeyEntry{
			'w': axis(AxisVertical, 1),
			's': axis(AxisVertical, -1),
			'a': axis(AxisHorizontal, -1),
			'd': axis(AxisHorizontal, 1),
			' ': action(ActionJump),
			'e': action(ActionInteract),
			'p': action(ActionPause),
			'q': action(ActionQuit),
		},
	}
}

// Lookup resolves a tcell key event to a table entry
func (t *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev == nil {
		return KeyEntry{}
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return t.Runes[r]
	}
	return t.SpecialKeys[ev.Key()]
}

// Feed routes a key event into the latch, returns false for unbound keys
func (t *KeyTable) Feed(l *Latch, ev *tcell.EventKey) bool {
	entry := t.Lookup(ev)
	switch entry.Behavior {
	case BehaviorAction:
		l.Press(entry.Action)
	case BehaviorAxis:
		l.Hold(entry.Axis, entry.Value)
	default:
		return false
	}
	return true
}
