package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/village/parameter"
)

// Ticker is advanced once per loop tick with the elapsed game time
type Ticker interface {
	Tick(dt time.Duration)
}

// TickFunc adapts a function to Ticker
type TickFunc func(dt time.Duration)

// Tick calls f(dt)
func (f TickFunc) Tick(dt time.Duration) { f(dt) }

// Loop drives registered tickers on a fixed interval
// All tickers run on the loop goroutine in registration order
// Pause-aware: while the clock is paused no tick is delivered
type Loop struct {
	clock    *PausableClock
	interval time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	tickers []Ticker

	lastGameTime     time.Duration
	nextTickDeadline time.Duration

	tickCount atomic.Uint64
	running   atomic.Bool
}

// NewLoop creates a tick loop on the given clock
func NewLoop(clock *PausableClock, interval time.Duration, log *slog.Logger) *Loop {
	if interval <= 0 {
		interval = parameter.GameUpdateInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Loop{
		clock:    clock,
		interval: interval,
		log:      log,
	}
}

// Add registers tickers, must be called before Run
func (l *Loop) Add(tickers ...Ticker) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tickers = append(l.tickers, tickers...)
}

// Ticks returns the number of ticks delivered so far
func (l *Loop) Ticks() uint64 {
	return l.tickCount.Load()
}

// Step delivers one tick synchronously, dt is capped at MaxTickDelta
// Used by Run and by headless drivers that own their own time
func (l *Loop) Step(dt time.Duration) {
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}
	if dt < 0 {
		dt = 0
	}

	l.mu.Lock()
	tickers := l.tickers
	l.mu.Unlock()

	for _, t := range tickers {
		t.Tick(dt)
	}
	l.tickCount.Add(1)
}

// Run blocks delivering ticks until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	l.lastGameTime = l.clock.Elapsed()
	l.nextTickDeadline = l.lastGameTime + l.interval

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	l.log.Debug("tick loop started", "interval", l.interval)

	for {
		if err := ctx.Err(); err != nil {
			l.log.Debug("tick loop stopped", "ticks", l.Ticks())
			return nil
		}

		var sleepDuration time.Duration

		if l.clock.IsPaused() {
			// Longer sleep while paused, no tick is delivered
			sleepDuration = l.interval * 2
		} else {
			gameNow := l.clock.Elapsed()
			if gameNow >= l.nextTickDeadline {
				l.Step(gameNow - l.lastGameTime)
				l.lastGameTime = gameNow
				l.nextTickDeadline += l.interval

				// Drift correction, skip missed deadlines instead of bursting
				if gameNow-l.nextTickDeadline > l.interval*2 {
					l.nextTickDeadline = gameNow + l.interval
				}
			}
			sleepDuration = l.nextTickDeadline - l.clock.Elapsed()
		}

		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}
	}
}
