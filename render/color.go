package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/parameter"
)

// Palette
var (
	ColorBackground = mustHex(parameter.ColorBackground)
	ColorGround     = mustHex(parameter.ColorGround)
	ColorPlayer     = mustHex(parameter.ColorPlayer)
	ColorStatusFg   = mustHex(parameter.ColorStatusFg)
	ColorStatusBg   = mustHex(parameter.ColorStatusBg)
	ColorMessageFg  = mustHex(parameter.ColorMessageFg)
)

// TrueColor selects 24-bit output, otherwise tcell maps colors onto the terminal palette
var TrueColor = true

// ToTCell converts a color for the screen
func ToTCell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	if !TrueColor {
		return tcell.PaletteColor(nearestPalette(r, g, b))
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// nearestPalette picks the xterm 6x6x6 cube index
func nearestPalette(r, g, b uint8) int {
	q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return 16 + 36*q(r) + 6*q(g) + q(b)
}

// Blend mixes src over dst, alpha in [0,1]
func Blend(dst, src colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	return dst.BlendRgb(src, alpha)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
