package render

// Layer orders renderers within a frame, lower layers draw first
// Renderers sharing a layer draw in registration order
type Layer int

const (
	LayerBackground Layer = iota
	LayerGrid
	LayerLight
	LayerObjects
	LayerParticles
	LayerPlayer
	LayerHUD
)

// Renderer draws one concern of the village view into the frame buffer
type Renderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// Hideable renderers are skipped while Visible reports false
type Hideable interface {
	Visible() bool
}
