package particle

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

// Shape selects the spawn volume and the start direction
type Shape uint8

const (
	// ShapeCircle spawns inside a horizontal disc, moving outward along it
	ShapeCircle Shape = iota
	// ShapeSphere spawns at the anchor, moving in a random direction
	ShapeSphere
)

// EmitterConfig describes a one-shot burst
type EmitterConfig struct {
	Name string

	Count      int
	Lifetime   time.Duration
	StartSpeed float64
	StartSize  float64

	// GravityModifier scales ParticleGravity
	GravityModifier float64

	Shape       Shape
	SpawnRadius float64
	// Offset places the spawn center relative to the anchor
	Offset vmath.Vec3F

	// Constant per-particle drift drawn from [VelMin, VelMax]
	VelMin vmath.Vec3F
	VelMax vmath.Vec3F

	// SpinRange draws per-particle spin in degrees per second from [-SpinRange, SpinRange]
	SpinRange float64

	Color     colorful.Color
	FadeColor colorful.Color
	// FadeStart is the normalized age where size, color and alpha start fading
	FadeStart float64
}

// BlossomConfig is the cherry-blossom petal fall
func BlossomConfig() EmitterConfig {
	return EmitterConfig{
		Name:            parameter.BurstBlossoms,
		Count:           parameter.PetalCount,
		Lifetime:        parameter.PetalLifetime,
		StartSpeed:      parameter.PetalStartSpeed,
		StartSize:       parameter.PetalSize,
		GravityModifier: parameter.PetalGravity,
		Shape:           ShapeCircle,
		SpawnRadius:     parameter.PetalSpawnRadius,
		Offset:          vmath.Vec3F{Y: parameter.PetalSpawnHeight},
		VelMin:          vmath.Vec3F{X: parameter.PetalVelXMin, Y: parameter.PetalVelYMin, Z: parameter.PetalVelZMin},
		VelMax:          vmath.Vec3F{X: parameter.PetalVelXMax, Y: parameter.PetalVelYMax, Z: parameter.PetalVelZMax},
		SpinRange:       180,
		Color:           mustHex(parameter.ColorPetal),
		FadeColor:       mustHex(parameter.ColorPetalFadeOut),
		FadeStart:       parameter.PetalFadeStart,
	}
}

// FlareConfig is the short spark burst when the lantern catches
func FlareConfig() EmitterConfig {
	return EmitterConfig{
		Name:       parameter.BurstLanternFlare,
		Count:      parameter.FlareCount,
		Lifetime:   parameter.FlareLifetime,
		StartSpeed: parameter.FlareSpeed,
		StartSize:  0.1,
		Shape:      ShapeSphere,
		Color:      mustHex(parameter.ColorLanternGlow),
		FadeColor:  mustHex(parameter.ColorPetalFadeOut),
		FadeStart:  0.5,
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
