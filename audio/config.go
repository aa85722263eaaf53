package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/village/parameter"
)

// Config holds engine settings
type Config struct {
	SampleRate beep.SampleRate
	BufferTime time.Duration
	Volume     float64
	Muted      bool
}

// DefaultConfig returns the parameter defaults
func DefaultConfig() *Config {
	return &Config{
		SampleRate: parameter.AudioSampleRate,
		BufferTime: parameter.AudioBufferTime,
		Volume:     parameter.AudioVolume,
	}
}
