package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"

	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/particle"
	"github.com/lixenwraith/village/prefab"
	"github.com/lixenwraith/village/scene"
	"github.com/lixenwraith/village/vmath"
)

// GridRenderer dots the ground at a fixed spacing so movement is visible
type GridRenderer struct{}

func (GridRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	step := parameter.GridSpacing
	for y := ctx.MapTop; y < ctx.MapTop+ctx.MapHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			wx, wz := ctx.Unproject(x, y)
			if onGrid(wx, step, 0.5/parameter.CellsPerMeterX) && onGrid(wz, step, 0.5/parameter.CellsPerMeterY) {
				buf.SetRune(x, y, '·', ColorGround, false)
			}
		}
	}
}

func onGrid(v, step, tolerance float64) bool {
	r := math.Mod(math.Abs(v), step)
	return r < tolerance || step-r < tolerance
}

// Objects supplies the scene objects to draw
type Objects interface {
	Objects() []*scene.Object
}

// ObjectsFunc adapts a function to Objects
type ObjectsFunc func() []*scene.Object

func (f ObjectsFunc) Objects() []*scene.Object { return f() }

// LightRenderer tints the ground around every enabled light
type LightRenderer struct {
	Source Objects
}

func (r LightRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, o := range r.Source.Objects() {
		if o.Light == nil || !o.Light.Enabled() || o.Light.Range() <= 0 {
			continue
		}
		center := o.Zone.Transform.Position
		rng := o.Light.Range()
		peak := math.Min(o.Light.Intensity()*parameter.LightGlowScale, 1)

		x0, y0, _ := ctx.Project(vmath.V3FAdd(center, vmath.Vec3F{X: -rng, Z: rng}))
		x1, y1, _ := ctx.Project(vmath.V3FAdd(center, vmath.Vec3F{X: rng, Z: -rng}))
		for y := max(y0, ctx.MapTop); y <= min(y1, ctx.MapTop+ctx.MapHeight-1); y++ {
			for x := max(x0, 0); x <= min(x1, ctx.ScreenWidth-1); x++ {
				wx, wz := ctx.Unproject(x, y)
				d := math.Hypot(wx-center.X, wz-center.Z)
				if d >= rng {
					continue
				}
				buf.Tint(x, y, o.Light.Color(), peak*(1-d/rng))
			}
		}
	}
}

var kindGlyphs = map[string]rune{
	prefab.KindBlade:        '/',
	prefab.KindBladeDisplay: '†',
	prefab.KindSpinner:      '+',
	prefab.KindBook:         'B',
	prefab.KindLantern:      'L',
	prefab.KindStatue:       'S',
	prefab.KindFlag:         'F',
}

var stateColors = map[interact.State]colorful.Color{
	interact.StateDormant:   mustHex(parameter.ColorDormant),
	interact.StateRevealed:  mustHex(parameter.ColorRevealed),
	interact.StatePrompting: mustHex(parameter.ColorPrompting),
	interact.StateActivated: mustHex(parameter.ColorActivated),
	interact.StateResolved:  mustHex(parameter.ColorResolved),
}

// ObjectRenderer draws one glyph per visible object, colored by zone state
type ObjectRenderer struct {
	Source Objects
}

func (r ObjectRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, o := range r.Source.Objects() {
		if o.Body != nil && !o.Body.Visible() {
			continue
		}
		x, y, ok := ctx.Project(o.Zone.Transform.Position)
		if !ok {
			continue
		}
		glyph, known := kindGlyphs[o.Kind]
		if !known {
			glyph = '?'
		}
		buf.SetRune(x, y, glyph, ObjectColor(o), o.Zone.State() == interact.StatePrompting)
	}
}

// ObjectColor is the state color pulled toward the body's emission
func ObjectColor(o *scene.Object) colorful.Color {
	c, ok := stateColors[o.Zone.State()]
	if !ok {
		c = ColorGround
	}
	if o.Body != nil {
		if glow, intensity := o.Body.Emission(); intensity > 0 {
			c = Blend(c, glow, math.Min(intensity/parameter.LanternEmissionIntensity, 1))
		}
	}
	return c
}

// Samples supplies live particles
type Samples interface {
	Samples() []particle.Sample
}

// ParticleRenderer draws particles as dots sized by their scale
type ParticleRenderer struct {
	Source Samples
}

func (r ParticleRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, s := range r.Source.Samples() {
		x, y, ok := ctx.Project(s.Pos)
		if !ok || s.Alpha <= 0 {
			continue
		}
		glyph := '.'
		if s.Size >= 0.2 {
			glyph = '*'
		}
		bg := buf.Get(x, y).Bg
		buf.SetRune(x, y, glyph, Blend(bg, s.Color, s.Alpha), false)
	}
}

// Actor is the viewpoint the map follows
type Actor interface {
	Position() vmath.Vec3F
	Rotation() vmath.Quat
}

// PlayerRenderer draws the player as an arrow along its heading
type PlayerRenderer struct {
	Actor Actor
}

func (r PlayerRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	x, y, ok := ctx.Project(r.Actor.Position())
	if !ok {
		return
	}
	buf.SetRune(x, y, HeadingGlyph(vmath.QRotate(r.Actor.Rotation(), vmath.V3FForward)), ColorPlayer, true)
}

// HeadingGlyph picks the arrow closest to a horizontal direction
func HeadingGlyph(dir vmath.Vec3F) rune {
	if math.Abs(dir.X) > math.Abs(dir.Z) {
		if dir.X > 0 {
			return '>'
		}
		return '<'
	}
	if dir.Z < 0 {
		return 'v'
	}
	return '^'
}

// StatusBar draws a one-line status supplied by Text, truncated to the screen
type StatusBar struct {
	Text func(ctx RenderContext) string
}

func (s StatusBar) Render(ctx RenderContext, buf *RenderBuffer) {
	buf.Fill(0, ColorStatusBg)
	line := truncate.StringWithTail(s.Text(ctx), uint(max(ctx.ScreenWidth-1, 0)), "…")
	buf.Text(1, 0, line, ColorStatusFg, ColorStatusBg)
}
