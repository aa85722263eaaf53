package input

import (
	"sync"
	"time"
)

// DefaultHold is how long an axis key stays held after its last repeat
// Terminals report no key release, so holds decay instead
const DefaultHold = 120 * time.Millisecond

// Latch buffers input between ticks
// Producers (terminal event goroutine) call Press and Hold
// The tick goroutine calls Snapshot once per tick
type Latch struct {
	mu      sync.Mutex
	now     func() time.Time
	hold    time.Duration
	pressed [actionCount]bool
	holds   [axisCount]axisHold
	current *Frame
}

type axisHold struct {
	value float64
	until time.Time
}

// NewLatch creates a latch, now may be nil for the wall clock
func NewLatch(now func() time.Time, hold time.Duration) *Latch {
	if now == nil {
		now = time.Now
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Latch{now: now, hold: hold, current: &Frame{}}
}

// Press records an edge-triggered action press
func (l *Latch) Press(a Action) {
	if a >= actionCount {
		return
	}
	l.mu.Lock()
	l.pressed[a] = true
	l.mu.Unlock()
}

// Hold sets an axis value that decays after the hold window
func (l *Latch) Hold(a Axis, value float64) {
	if a >= axisCount {
		return
	}
	l.mu.Lock()
	l.holds[a] = axisHold{value: clampAxis(value), until: l.now().Add(l.hold)}
	l.mu.Unlock()
}

// Snapshot captures pending presses and live axis holds into a new frame
// Pending presses are cleared
func (l *Latch) Snapshot() *Frame {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := &Frame{pressed: l.pressed}
	l.pressed = [actionCount]bool{}

	now := l.now()
	for i, h := range l.holds {
		if now.Before(h.until) {
			f.axes[i] = h.value
		}
	}
	l.current = f
	return f
}

// Pressed reads the most recent snapshot
func (l *Latch) Pressed(a Action) bool {
	l.mu.Lock()
	f := l.current
	l.mu.Unlock()
	return f.Pressed(a)
}

// Axis reads the most recent snapshot
func (l *Latch) Axis(a Axis) float64 {
	l.mu.Lock()
	f := l.current
	l.mu.Unlock()
	return f.Axis(a)
}
