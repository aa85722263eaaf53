package event

// EventType represents the type of interaction event
type EventType int

const (
	// EventZoneTransition records a zone state change
	// Trigger: interact.Controller | Payload: *ZoneTransitionPayload
	EventZoneTransition EventType = iota + 1

	// EventTextChanged records a write to the shared text surface
	// Trigger: interact.Arbiter | Payload: *TextChangedPayload
	EventTextChanged

	// EventMotionStopped records an explicit stop of a continuous motion
	// Trigger: prefab.Statue.StopRotation | Payload: *MotionStoppedPayload
	EventMotionStopped

	// EventEffectFired records a particle burst or audio clip dispatch
	// Trigger: interact.Controller | Payload: *EffectFiredPayload
	EventEffectFired
)

var typeNames = map[EventType]string{
	EventZoneTransition: "ZoneTransition",
	EventTextChanged:    "TextChanged",
	EventMotionStopped:  "MotionStopped",
	EventEffectFired:    "EffectFired",
}

// String returns the event type name
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
