package engine

import (
	"sync/atomic"
	"time"
)

// TimeSource supplies wall time to a PausableClock
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime only moves when Set or Advance is called
// Safe for concurrent use; headless runs and tests drive it explicitly
type ManualTime struct {
	nanos atomic.Int64
}

func NewManualTime(start time.Time) *ManualTime {
	m := &ManualTime{}
	m.nanos.Store(start.UnixNano())
	return m
}

func (m *ManualTime) Now() time.Time {
	return time.Unix(0, m.nanos.Load()).UTC()
}

func (m *ManualTime) Set(t time.Time) {
	m.nanos.Store(t.UnixNano())
}

func (m *ManualTime) Advance(d time.Duration) {
	m.nanos.Add(int64(d))
}
