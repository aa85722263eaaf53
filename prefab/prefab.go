// Package prefab assembles the village's interactive objects on top of
// interact zones: the blade, its display copy, the book, the lantern,
// the statue and the flags.
package prefab

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/vmath"
)

// Placement positions a prefab in the scene
type Placement struct {
	ID       string
	Position vmath.Vec3F
	Rotation vmath.Quat
	Scale    float64
}

// Parts are the collaborators attached to a prefab's zone, any may be nil
type Parts struct {
	Light   interact.Light
	Body    interact.Body
	Carrier interact.Carrier
}

// Emissive is implemented by bodies whose material can glow
type Emissive interface {
	SetEmission(c colorful.Color, intensity float64)
}

func (p Parts) options(extra ...interact.ZoneOption) []interact.ZoneOption {
	opts := make([]interact.ZoneOption, 0, 3+len(extra))
	if p.Light != nil {
		opts = append(opts, interact.WithLight(p.Light))
	}
	if p.Body != nil {
		opts = append(opts, interact.WithBody(p.Body))
	}
	if p.Carrier != nil {
		opts = append(opts, interact.WithCarrier(p.Carrier))
	}
	return append(opts, extra...)
}

func (p Placement) apply(cfg *interact.Config) {
	cfg.ID = p.ID
	cfg.Position = p.Position
	cfg.Rotation = p.Rotation
	cfg.Scale = p.Scale
}

// setEmission is a no-op for bodies without an emissive material
func setEmission(b interact.Body, c colorful.Color, intensity float64) {
	if e, ok := b.(Emissive); ok {
		e.SetEmission(c, intensity)
	}
}

// hex parses a color constant, malformed constants are programmer errors
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
