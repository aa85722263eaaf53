package render

import (
	"math"
	"time"

	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Elapsed  time.Duration
	IsPaused bool

	// Camera is the world point drawn at the map center
	Camera vmath.Vec3F

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Map area rows [MapTop, MapTop+MapHeight)
	MapTop    int
	MapHeight int
}

// NewRenderContext lays out the status bar, map and message bar for a screen size
func NewRenderContext(width, height int, camera vmath.Vec3F, elapsed time.Duration, paused bool) RenderContext {
	mapHeight := max(height-parameter.TopMargin-parameter.MessageRows, 0)
	return RenderContext{
		Elapsed:      elapsed,
		IsPaused:     paused,
		Camera:       camera,
		ScreenWidth:  width,
		ScreenHeight: height,
		MapTop:       parameter.TopMargin,
		MapHeight:    mapHeight,
	}
}

// Project maps a world position onto the top-down map, north (+Z) up
// ok is false when the point falls outside the map area
func (c RenderContext) Project(p vmath.Vec3F) (x, y int, ok bool) {
	x = c.ScreenWidth/2 + int(math.Round((p.X-c.Camera.X)*parameter.CellsPerMeterX))
	y = c.MapTop + c.MapHeight/2 - int(math.Round((p.Z-c.Camera.Z)*parameter.CellsPerMeterY))
	ok = x >= 0 && x < c.ScreenWidth && y >= c.MapTop && y < c.MapTop+c.MapHeight
	return x, y, ok
}

// Unproject returns the world X, Z under a map cell
func (c RenderContext) Unproject(x, y int) (wx, wz float64) {
	wx = c.Camera.X + float64(x-c.ScreenWidth/2)/parameter.CellsPerMeterX
	wz = c.Camera.Z - float64(y-c.MapTop-c.MapHeight/2)/parameter.CellsPerMeterY
	return wx, wz
}

// MessageTop is the first message bar row
func (c RenderContext) MessageTop() int {
	return c.MapTop + c.MapHeight
}
