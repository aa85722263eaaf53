package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the interaction tick interval (~60 Hz)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps dt handed to tickers after a stall
	MaxTickDelta = 250 * time.Millisecond

	// MaxTransitionsPerTick bounds chained state machine transitions in one tick
	MaxTransitionsPerTick = 8
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
