package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/village/parameter"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:    make(map[StateID]*Node[T]),
		maxChain: parameter.MaxTransitionsPerTick,
	}
}

// SetObserver installs a callback run after every transition
func (m *Machine[T]) SetObserver(fn func(ctx T, from, to StateID)) {
	m.observer = fn
}

// SetMaxChain bounds how many tick transitions one Update may follow
func (m *Machine[T]) SetMaxChain(n int) {
	if n < 1 {
		n = 1
	}
	m.maxChain = n
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	m.initialID = initialID
	m.activeID = initialID
	m.timeInState = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// State returns the active state
func (m *Machine[T]) State() StateID {
	return m.activeID
}

// StateName returns the active state's name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeID]; ok {
		return node.Name
	}
	return ""
}

// Name returns the name of any declared state
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Update advances the machine by dt: OnUpdate actions of the active state run
// first, then tick transitions are followed until none passes or the chain bound is hit
// Returns the number of transitions taken
func (m *Machine[T]) Update(ctx T, dt time.Duration) int {
	if m.activeID == StateNone {
		return 0
	}

	m.timeInState += dt

	node := m.nodes[m.activeID]
	for _, action := range node.OnUpdate {
		action(ctx)
	}

	taken := 0
	for taken < m.maxChain {
		if !m.fire(ctx, TriggerTick) {
			break
		}
		taken++
	}
	return taken
}

// HandleTrigger offers an external trigger to the active state
// Returns true if a transition was taken
func (m *Machine[T]) HandleTrigger(ctx T, trigger Trigger) bool {
	if m.activeID == StateNone || trigger == TriggerTick {
		return false
	}
	return m.fire(ctx, trigger)
}

// fire takes the first passing transition of the active state for trigger
func (m *Machine[T]) fire(ctx T, trigger Trigger) bool {
	node := m.nodes[m.activeID]
	for _, trans := range node.Transitions {
		if trans.Trigger != trigger {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx, m) {
			m.transition(ctx, trans)
			return true
		}
	}
	return false
}

// transition performs the state change: exit, transition action, enter
func (m *Machine[T]) transition(ctx T, trans Transition[T]) {
	from := m.activeID
	if from == trans.TargetID {
		return
	}

	target, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", trans.TargetID))
	}

	for _, action := range m.nodes[from].OnExit {
		action(ctx)
	}
	if trans.Action != nil {
		trans.Action(ctx)
	}

	m.activeID = trans.TargetID
	m.timeInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}

	if m.observer != nil {
		m.observer(ctx, from, trans.TargetID)
	}
}
