package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type layered struct {
	renderer Renderer
	layer    Layer
}

// RenderOrchestrator composites every registered renderer into one frame
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []layered
}

func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
	}
}

// Register places r after every renderer on the same or a lower layer
func (o *RenderOrchestrator) Register(r Renderer, layer Layer) {
	pos := slices.IndexFunc(o.renderers, func(e layered) bool { return e.layer > layer })
	if pos < 0 {
		pos = len(o.renderers)
	}
	o.renderers = slices.Insert(o.renderers, pos, layered{renderer: r, layer: layer})
}

func (o *RenderOrchestrator) Size() (int, int) { return o.buffer.Size() }

// Resize follows the screen size and syncs the terminal
func (o *RenderOrchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// Buffer exposes the last composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer { return o.buffer }

// RenderFrame clears the buffer, runs visible renderers in layer order and shows the result
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()
	for _, e := range o.renderers {
		if h, ok := e.renderer.(Hideable); ok && !h.Visible() {
			continue
		}
		e.renderer.Render(ctx, o.buffer)
	}
	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
