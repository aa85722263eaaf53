package parameter

import "time"

// Audio Engine
const (
	AudioSampleRate = 48000
	AudioBufferTime = 100 * time.Millisecond
	AudioVolume     = 0.6
)

// Clip names shared by prefabs, the player and the audio engine
const (
	ClipLanternLight = "lantern_light"
	ClipStatueGrind  = "statue_grind"
	ClipFootstepA    = "footstep_a"
	ClipFootstepB    = "footstep_b"
	ClipFootstepC    = "footstep_c"
)

// Burst names shared by prefabs and the particle registry
const (
	BurstLanternFlare = "lantern_flare"
	BurstBlossoms     = "cherry_blossoms"
)

// Clip lengths
const (
	ChimeDuration    = 1200 * time.Millisecond
	FootstepDuration = 180 * time.Millisecond
	FootstepInterval = 500 * time.Millisecond
)
