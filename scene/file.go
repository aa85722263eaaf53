package scene

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/village/interact"
	"github.com/lixenwraith/village/prefab"
	"github.com/lixenwraith/village/vmath"
)

//go:embed village.toml
var defaultScene []byte

// File is the decoded scene description
type File struct {
	Settings Settings     `toml:"settings"`
	Player   PlayerSpec   `toml:"player"`
	Objects  []ObjectSpec `toml:"object"`
}

// Settings are scene-wide values
type Settings struct {
	Name   string  `toml:"name"`
	Policy string  `toml:"policy"`
	Ground float64 `toml:"ground"`
}

// PlayerSpec is the player's start
type PlayerSpec struct {
	Position   []float64 `toml:"position"`
	Yaw        float64   `toml:"yaw"`
	HandOffset []float64 `toml:"hand_offset"`
}

// ObjectSpec places one prefab
// Kind-specific keys are ignored by other kinds
type ObjectSpec struct {
	ID       string    `toml:"id"`
	Kind     string    `toml:"kind"`
	Position []float64 `toml:"position"`
	Rotation []float64 `toml:"rotation"` // pitch, yaw, roll
	Scale    float64   `toml:"scale"`

	// blade-display
	Spinning bool `toml:"spinning"`
	// spinner
	Speed float64 `toml:"speed"`
	// statue
	RequireLantern bool   `toml:"require_lantern"`
	Lantern        string `toml:"lantern"`
	// flag
	Wind *WindSpec `toml:"wind"`
}

// WindSpec overrides flag wind defaults, zero fields keep the default
type WindSpec struct {
	Direction    []float64 `toml:"direction"`
	Strength     float64   `toml:"strength"`
	Speed        float64   `toml:"speed"`
	WaveHeight   float64   `toml:"wave_height"`
	WaveSpeed    float64   `toml:"wave_speed"`
	GustInterval float64   `toml:"gust_interval"`
	GustStrength float64   `toml:"gust_strength"`
}

var knownKinds = map[string]bool{
	prefab.KindBlade:        true,
	prefab.KindBladeDisplay: true,
	prefab.KindSpinner:      true,
	prefab.KindBook:         true,
	prefab.KindLantern:      true,
	prefab.KindStatue:       true,
	prefab.KindFlag:         true,
}

// Parse decodes and validates scene TOML
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown scene keys %s", interact.ErrInvalidConfiguration, strings.Join(keys, ", "))
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads a scene file from disk
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return f, nil
}

// Default returns the embedded village scene
func Default() *File {
	f, err := Parse(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("embedded scene: %v", err))
	}
	return f
}

func (f *File) validate() error {
	if _, err := interact.ParsePolicy(f.Settings.Policy); err != nil {
		return err
	}
	if _, err := vec(f.Player.Position, vmath.Vec3F{}); err != nil {
		return fmt.Errorf("player position: %w", err)
	}
	if _, err := vec(f.Player.HandOffset, vmath.Vec3F{}); err != nil {
		return fmt.Errorf("player hand_offset: %w", err)
	}

	ids := make(map[string]bool, len(f.Objects))
	for i, o := range f.Objects {
		if !knownKinds[o.Kind] {
			return fmt.Errorf("%w: object %d has unknown kind %q", interact.ErrInvalidConfiguration, i, o.Kind)
		}
		if o.ID != "" {
			if ids[o.ID] {
				return fmt.Errorf("%w: duplicate object id %q", interact.ErrInvalidConfiguration, o.ID)
			}
			ids[o.ID] = true
		}
		if _, err := vec(o.Position, vmath.Vec3F{}); err != nil {
			return fmt.Errorf("object %q position: %w", o.ID, err)
		}
		if _, err := vec(o.Rotation, vmath.Vec3F{}); err != nil {
			return fmt.Errorf("object %q rotation: %w", o.ID, err)
		}
		if o.Scale < 0 {
			return fmt.Errorf("%w: object %q has negative scale", interact.ErrInvalidConfiguration, o.ID)
		}
		if o.Wind != nil {
			if _, err := vec(o.Wind.Direction, vmath.Vec3F{}); err != nil {
				return fmt.Errorf("object %q wind direction: %w", o.ID, err)
			}
		}
	}
	return nil
}

// vec converts a 3-element array, empty gives def
func vec(v []float64, def vmath.Vec3F) (vmath.Vec3F, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return vmath.Vec3F{X: v[0], Y: v[1], Z: v[2]}, nil
	default:
		return def, fmt.Errorf("%w: expected 3 components, got %d", interact.ErrInvalidConfiguration, len(v))
	}
}

func (o ObjectSpec) placement() prefab.Placement {
	pos, _ := vec(o.Position, vmath.Vec3F{})
	euler, _ := vec(o.Rotation, vmath.Vec3F{})
	rot := vmath.QIdentity
	if euler != (vmath.Vec3F{}) {
		rot = vmath.QFromEuler(euler.X, euler.Y, euler.Z)
	}
	return prefab.Placement{ID: o.ID, Position: pos, Rotation: rot, Scale: o.Scale}
}

func (w *WindSpec) config() interact.WindConfig {
	cfg := interact.DefaultWindConfig()
	if w == nil {
		return cfg
	}
	if d, _ := vec(w.Direction, vmath.Vec3F{}); d != (vmath.Vec3F{}) {
		cfg.Direction = d
	}
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&cfg.Strength, w.Strength)
	set(&cfg.Speed, w.Speed)
	set(&cfg.WaveHeight, w.WaveHeight)
	set(&cfg.WaveSpeed, w.WaveSpeed)
	set(&cfg.GustInterval, w.GustInterval)
	set(&cfg.GustStrength, w.GustStrength)
	return cfg
}
