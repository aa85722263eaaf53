package parameter

import "time"

// Shared interaction
const (
	// InteractKey is the default key bound to the interact action
	InteractKey = 'e'

	// RiseSnapDistance is where a rising object snaps onto its target
	RiseSnapDistance = 0.01
)

// Blade
const (
	BladeRevealRadius   = 5.0
	BladePickupRadius   = 3.0
	BladeLightIntensity = 3.0
	BladeLightRange     = 10.0
	BladeCarryScale     = 0.8

	// BladeDisplayLightIntensity is the reveal-only variant's light
	BladeDisplayLightIntensity = 2.0
	BladeDisplayEmission       = 0.5

	// BladeSpinSpeed is the display spinner rate in degrees per second
	BladeSpinSpeed = 50.0

	BladeRevealTextDuration   = 2 * time.Second
	BladeResolvedTextDuration = 3 * time.Second

	BladeRevealText   = "You found the blade!"
	BladePromptText   = "Press E to pick up the blade"
	BladeResolvedText = "Return the blade to the village center!"
)

// Book
const (
	BookRadius         = 3.0
	BookGlowIntensity  = 3.0
	BookLightIntensity = 5.0
	BookLightRange     = 8.0
	BookPulseSpeed     = 2.0
	BookPulseAmplitude = 0.3
	BookRevealBoost    = 1.5
	BookRiseHeight     = 0.5
	BookRiseSpeed      = 2.0

	BookResolvedTextDuration = 5 * time.Second

	BookPromptText   = "Press E to reveal clue"
	BookResolvedText = "Look under the tree"
)

// Lantern
const (
	LanternRadius            = 3.0
	LanternLightIntensity    = 8.0
	LanternLightRange        = 12.0
	LanternEmissionIntensity = 5.0

	// LanternFlickerCount is the number of celebration flashes after lighting
	LanternFlickerCount = 3
	LanternFlickerBoost = 1.5
	LanternFlickerStep  = 300 * time.Millisecond

	LanternResolvedTextDuration = 5 * time.Second

	LanternPromptText   = "Press E to light the offering"
	LanternResolvedText = "Go find the statue"
)

// Statue
const (
	StatueRadius        = 5.0
	StatueRotationSpeed = 30.0

	// StatueFollowUpDelay is when the completion message replaces the rotating message
	StatueFollowUpDelay        = 3 * time.Second
	StatueFollowUpTextDuration = 5 * time.Second

	StatuePromptText   = "Press E to activate the statue"
	StatueResolvedText = "The statue is rotating..."
	StatueFollowUpText = "Look inside the shrine"
)

// Flag
const (
	FlagWindStrength = 1.0
	FlagWindSpeed    = 1.0
	FlagWaveHeight   = 0.5
	FlagWaveSpeed    = 2.0
	FlagGustInterval = 3.0
	FlagGustStrength = 2.0

	// FlagPhaseRange is the upper bound of the random per-instance phase offset in seconds
	FlagPhaseRange = 100.0

	FlagPitchScale  = 10.0
	FlagYawScale    = 20.0
	FlagRollScale   = 5.0
	FlagOffsetScale = 0.1

	// FlagGustRelax is the per-second rate the gust multiplier eases back to 1
	FlagGustRelax = 0.5
)

// Colors, hex encoded for go-colorful
const (
	ColorBladeLight   = "#ffeb04"
	ColorBookGlow     = "#ffe699"
	ColorLanternGlow  = "#ffbf66"
	ColorPetal        = "#ffcce6"
	ColorPetalFadeOut = "#ffffff"
)
