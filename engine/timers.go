package engine

import "time"

// Timers is a one-shot deferred task table keyed by timer id
// Advanced once per tick by its owner, not safe for concurrent use
//
// Each timer fires exactly once, on the first Advance where its remaining
// duration reaches zero or below, then it is removed. Timers due in the same
// Advance fire in scheduling order. A timer scheduled from inside a firing
// callback is not decremented or fired until the next Advance.
type Timers struct {
	entries []*timerEntry
	firing  []*timerEntry
}

type timerEntry struct {
	id        string
	remaining time.Duration
	fn        func()
	cancelled bool
}

// After schedules fn to run once d has elapsed
// An existing timer with the same id is replaced and moved to the back of the order
func (t *Timers) After(id string, d time.Duration, fn func()) {
	t.Cancel(id)
	t.entries = append(t.entries, &timerEntry{id: id, remaining: d, fn: fn})
}

// Cancel drops a pending timer without firing it, reports whether one existed
func (t *Timers) Cancel(id string) bool {
	for i, e := range t.entries {
		if e.id == id {
			e.cancelled = true
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	for _, e := range t.firing {
		if e.id == id && !e.cancelled {
			e.cancelled = true
			return true
		}
	}
	return false
}

// Pending reports whether a timer with the given id is scheduled
func (t *Timers) Pending(id string) bool {
	_, ok := t.Remaining(id)
	return ok
}

// Remaining returns the time left on a pending timer
func (t *Timers) Remaining(id string) (time.Duration, bool) {
	for _, e := range t.entries {
		if e.id == id {
			return e.remaining, true
		}
	}
	return 0, false
}

// Len returns the number of pending timers
func (t *Timers) Len() int {
	return len(t.entries)
}

// Clear drops every pending timer without firing
func (t *Timers) Clear() {
	for _, e := range t.entries {
		e.cancelled = true
	}
	for _, e := range t.firing {
		e.cancelled = true
	}
	t.entries = nil
}

// Advance decrements all pending timers by dt and fires the expired ones
// Returns the number of callbacks run
func (t *Timers) Advance(dt time.Duration) int {
	if len(t.entries) == 0 {
		return 0
	}

	var due []*timerEntry
	kept := t.entries[:0]
	for _, e := range t.entries {
		e.remaining -= dt
		if e.remaining <= 0 {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	// Zero the tail so dropped entries are collectable
	for i := len(kept); i < len(t.entries); i++ {
		t.entries[i] = nil
	}
	t.entries = kept

	t.firing = due
	defer func() { t.firing = nil }()

	fired := 0
	for _, e := range due {
		// A callback earlier in this pass may have cancelled a later one
		if e.cancelled {
			continue
		}
		e.cancelled = true
		if e.fn != nil {
			e.fn()
		}
		fired++
	}
	return fired
}
