package parameter

import "time"

// Cherry Blossom Burst
const (
	PetalCount       = 50
	PetalLifetime    = 5 * time.Second
	PetalStartSpeed  = 1.0
	PetalSize        = 0.3
	PetalGravity     = 0.2
	PetalSpawnHeight = 5.0
	PetalSpawnRadius = 3.0

	PetalVelXMin = -1.0
	PetalVelXMax = 1.0
	PetalVelYMin = -2.0
	PetalVelYMax = -1.0
	PetalVelZMin = -1.0
	PetalVelZMax = 1.0

	// PetalFadeStart is the normalized age where size and color start fading
	PetalFadeStart = 0.8
)

// Lantern lighting flare
const (
	FlareCount    = 12
	FlareLifetime = 800 * time.Millisecond
	FlareSpeed    = 2.5
)

// Gravity applied to particles, scaled by per-emitter modifier
const ParticleGravity = 9.81
