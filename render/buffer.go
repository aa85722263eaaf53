package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RenderBuffer is a compositor the renderers draw into before one flush to the screen
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) { return b.width, b.height }

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: ColorGround, Bg: ColorBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y, zero outside the buffer
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetRune replaces the glyph and foreground, keeping the background
func (b *RenderBuffer) SetRune(x, y int, r rune, fg colorful.Color, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune, c.Fg, c.Bold = r, fg, bold
}

// SetBg replaces the background
func (b *RenderBuffer) SetBg(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// Tint alpha-blends a color into the background
func (b *RenderBuffer) Tint(x, y int, c colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Bg = Blend(cell.Bg, c, alpha)
}

// Text writes s left to right from x, clipped to the buffer
func (b *RenderBuffer) Text(x, y int, s string, fg, bg colorful.Color) {
	for _, r := range s {
		if x >= b.width {
			return
		}
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
		}
		x++
	}
}

// Fill paints a full row background
func (b *RenderBuffer) Fill(y int, bg colorful.Color) {
	for x := 0; x < b.width; x++ {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: bg, Bg: bg}
		}
	}
}

// FlushToScreen copies every cell to the screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(ToTCell(c.Fg)).Background(ToTCell(c.Bg)).Bold(c.Bold)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
