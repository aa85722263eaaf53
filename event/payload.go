package event

// ZoneTransitionPayload carries a zone state change
type ZoneTransitionPayload struct {
	ZoneID string
	From   string
	To     string
}

// TextChangedPayload carries the new text surface contents and its owner
// Owner is empty when the surface was cleared
type TextChangedPayload struct {
	Owner string
	Text  string
}

// MotionStoppedPayload identifies the zone whose motion stopped
type MotionStoppedPayload struct {
	ZoneID string
}

// EffectKind distinguishes effect dispatches
type EffectKind int

const (
	EffectBurst EffectKind = iota
	EffectClip
)

// EffectFiredPayload carries a dispatched effect
type EffectFiredPayload struct {
	ZoneID string
	Kind   EffectKind
	Name   string
}
