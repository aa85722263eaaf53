package event

import "fmt"

// String renders the event as a single log line
func (e GameEvent) String() string {
	switch p := e.Payload.(type) {
	case *ZoneTransitionPayload:
		return fmt.Sprintf("[%d] %s %s: %s -> %s", e.Tick, e.Type, p.ZoneID, p.From, p.To)
	case *TextChangedPayload:
		if p.Text == "" {
			return fmt.Sprintf("[%d] %s cleared", e.Tick, e.Type)
		}
		return fmt.Sprintf("[%d] %s %s: %q", e.Tick, e.Type, p.Owner, p.Text)
	case *MotionStoppedPayload:
		return fmt.Sprintf("[%d] %s %s", e.Tick, e.Type, p.ZoneID)
	case *EffectFiredPayload:
		kind := "burst"
		if p.Kind == EffectClip {
			kind = "clip"
		}
		return fmt.Sprintf("[%d] %s %s: %s %s", e.Tick, e.Type, p.ZoneID, kind, p.Name)
	}
	return fmt.Sprintf("[%d] %s", e.Tick, e.Type)
}
