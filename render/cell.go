package render

import "github.com/lucasb-eyer/go-colorful"

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
	Bold bool
}
