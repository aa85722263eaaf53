package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameEventString(t *testing.T) {
	cases := []struct {
		ev   GameEvent
		want string
	}{
		{GameEvent{Type: EventZoneTransition, Tick: 3, Payload: &ZoneTransitionPayload{ZoneID: "blade", From: "Dormant", To: "Revealed"}},
			"[3] ZoneTransition blade: Dormant -> Revealed"},
		{GameEvent{Type: EventTextChanged, Tick: 4, Payload: &TextChangedPayload{Owner: "blade", Text: "hi"}},
			`[4] TextChanged blade: "hi"`},
		{GameEvent{Type: EventTextChanged, Tick: 5, Payload: &TextChangedPayload{}},
			"[5] TextChanged cleared"},
		{GameEvent{Type: EventMotionStopped, Tick: 6, Payload: &MotionStoppedPayload{ZoneID: "statue"}},
			"[6] MotionStopped statue"},
		{GameEvent{Type: EventEffectFired, Tick: 7, Payload: &EffectFiredPayload{ZoneID: "offering", Kind: EffectClip, Name: "lantern_light"}},
			"[7] EffectFired offering: clip lantern_light"},
		{GameEvent{Type: EventType(99), Tick: 8}, "[8] Unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.ev.String())
	}
}
