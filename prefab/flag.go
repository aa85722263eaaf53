package prefab

import (
	"math/rand/v2"

	"github.com/lixenwraith/village/interact"
)

const KindFlag = "flag"

// Flag sways in the wind, it has no interaction
type Flag struct {
	zone *interact.Zone
	wind *interact.Wind
}

// NewFlag registers a flag, rng supplies the phase and gusts
func NewFlag(ctrl *interact.Controller, at Placement, cfg interact.WindConfig, rng *rand.Rand) (*Flag, error) {
	zcfg := interact.Config{Kind: KindFlag}
	at.apply(&zcfg)

	f := &Flag{wind: interact.NewWind(cfg, rng)}
	z, err := ctrl.Add(zcfg, interact.WithMotion(f.wind))
	if err != nil {
		return nil, err
	}
	f.zone = z
	return f, nil
}

// Zone returns the underlying zone
func (f *Flag) Zone() *interact.Zone { return f.zone }

// Wind returns the flag's wind motion
func (f *Flag) Wind() *interact.Wind { return f.wind }
