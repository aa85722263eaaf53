package player

import (
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

// Hand is the carry point in front of the player
type Hand struct {
	player *Player
	offset vmath.Vec3F
}

// NewHand attaches a carrier at a local offset from the player
func NewHand(p *Player, offset vmath.Vec3F) *Hand {
	return &Hand{player: p, offset: offset}
}

// DefaultHandOffset is the right-hand carry position
func DefaultHandOffset() vmath.Vec3F {
	return vmath.Vec3F{X: parameter.HandOffsetX, Y: parameter.HandOffsetY, Z: parameter.HandOffsetZ}
}

// Position returns the hand position in world space
func (h *Hand) Position() vmath.Vec3F {
	return vmath.V3FAdd(h.player.Position(), vmath.QRotate(h.player.Rotation(), h.offset))
}

// Rotation follows the player's heading
func (h *Hand) Rotation() vmath.Quat {
	return h.player.Rotation()
}
