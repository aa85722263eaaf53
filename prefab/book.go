package prefab

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/village/input"
	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/parameter"
	"github.com/lixenwraith/village/vmath"
)

const KindBook = "book"

// Book pulses a background light until its clue is read, then rises
type Book struct {
	zone  *interact.Zone
	rise  *interact.Rise
	color colorful.Color

	clueRevealed bool
}

// NewBook registers a clue book
func NewBook(ctrl *interact.Controller, at Placement, parts Parts) (*Book, error) {
	b := &Book{color: hex(parameter.ColorBookGlow)}
	b.rise = interact.NewRise(vmath.V3FAdd(at.Position, vmath.V3FScale(vmath.V3FUp, parameter.BookRiseHeight)), parameter.BookRiseSpeed)

	cfg := interact.Config{
		Kind:                 KindBook,
		TriggerRadius:        parameter.BookRadius,
		Action:               input.ActionInteract,
		PromptText:           parameter.BookPromptText,
		ResolvedText:         parameter.BookResolvedText,
		ResolvedTextDuration: parameter.BookResolvedTextDuration,
		ResolveAfter:         parameter.BookResolvedTextDuration,
		Light: interact.LightSpec{
			Mode:      interact.LightAlways,
			Color:     b.color,
			Intensity: parameter.BookLightIntensity,
			Range:     parameter.BookLightRange,
		},
	}
	at.apply(&cfg)

	z, err := ctrl.Add(cfg, parts.options(
		interact.WithHooks(interact.Hooks{OnActivate: b.revealClue}),
		interact.WithMotion(interact.MotionFunc(b.pulse), b.rise),
	)...)
	if err != nil {
		return nil, err
	}
	b.zone = z
	setEmission(parts.Body, b.color, parameter.BookGlowIntensity)
	return b, nil
}

// Zone returns the underlying zone
func (b *Book) Zone() *interact.Zone { return b.zone }

// ClueRevealed reports whether the clue was read
func (b *Book) ClueRevealed() bool { return b.clueRevealed }

// Rising reports whether the book is still moving up
func (b *Book) Rising() bool { return b.rise.Active() }

// pulse modulates the light until the clue is revealed
func (b *Book) pulse(z *interact.Zone, now, _ time.Duration) {
	if b.clueRevealed || z.Light() == nil {
		return
	}
	k := math.Sin(now.Seconds()*parameter.BookPulseSpeed)*parameter.BookPulseAmplitude + 1
	z.Light().Configure(b.color, parameter.BookLightIntensity*k, parameter.BookLightRange)
}

func (b *Book) revealClue(z *interact.Zone) {
	b.clueRevealed = true
	if l := z.Light(); l != nil {
		l.Configure(b.color, parameter.BookLightIntensity*parameter.BookRevealBoost, parameter.BookLightRange)
	}
	b.rise.Start()
}
