package parameter

// Player Movement
const (
	PlayerMoveSpeed        = 5.0
	PlayerLookSensitivity  = 2.0
	PlayerJumpHeight       = 2.0
	PlayerGravity          = -9.81
	PlayerPitchLimit       = 90.0
	PlayerEyeHeight        = 1.6
	PlayerGroundCheck      = 0.2
	PlayerGroundedVelocity = -2.0

	// PlayerStepThreshold is the minimum horizontal movement that plays footsteps
	PlayerStepThreshold = 0.1
	PlayerStepPitchMin  = 0.95
	PlayerStepPitchMax  = 1.05
)

// Hand carrier offset in player local space
const (
	HandOffsetX = 0.35
	HandOffsetY = 1.2
	HandOffsetZ = 0.5
)

// PlayerLookRate converts a held look axis into degrees per second per unit sensitivity
const PlayerLookRate = 60.0
