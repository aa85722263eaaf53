package engine

import (
	"sync"
	"time"
)

// PausableClock measures game time: wall time since start minus every pause
// Elapsed game time drives every tick, so pauses never leak into timers or motion
type PausableClock struct {
	mu     sync.Mutex
	source TimeSource
	start  time.Time

	paused     bool
	pausedAt   time.Time
	pausedTime time.Duration
}

// NewPausableClock starts a clock on source, nil uses SystemTime
func NewPausableClock(source TimeSource) *PausableClock {
	if source == nil {
		source = SystemTime{}
	}
	return &PausableClock{source: source, start: source.Now()}
}

// Elapsed returns game time since the clock started, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	if pc.paused {
		now = pc.pausedAt
	}
	return now.Sub(pc.start) - pc.pausedTime
}

// Pause freezes game time; pausing twice is a no-op
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.source.Now()
}

// Resume continues game time from where it froze
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.pausedTime += pc.source.Now().Sub(pc.pausedAt)
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration includes a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.pausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pausedAt)
	}
	return total
}
