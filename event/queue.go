package event

import (
	"sync"

	"github.com/lixenwraith/village/parameter"
)

// EventQueue is a bounded FIFO ring of interaction events
// Any goroutine may Push; the front-end loop drains it with Consume.
// When full, the oldest event is overwritten and counted as dropped.
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int
	count   int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == len(eq.ring) {
		eq.ring[eq.start] = ev
		eq.start = (eq.start + 1) & parameter.EventBufferMask
		eq.dropped++
		return
	}
	eq.ring[(eq.start+eq.count)&parameter.EventBufferMask] = ev
	eq.count++
}

// Consume returns pending events oldest first and empties the queue
// Returns nil when nothing is pending
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}
	out := make([]GameEvent, eq.count)
	for i := range out {
		out[i] = eq.ring[(eq.start+i)&parameter.EventBufferMask]
	}
	eq.start, eq.count = 0, 0
	return out
}

func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped counts events overwritten before they were consumed
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
