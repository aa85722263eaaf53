package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Trigger names the external event a transition waits for
// TriggerTick transitions are evaluated on every Update
type Trigger int

const TriggerTick Trigger = 0

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards (e.g. *interact.Zone)
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	initialID StateID

	// Runtime state
	activeID    StateID
	timeInState time.Duration

	// maxChain bounds tick transitions followed within one Update
	maxChain int

	// observer is notified after every completed transition
	observer func(ctx T, from, to StateID)
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation priority order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Trigger  Trigger       // TriggerTick = evaluated every Update
	Guard    GuardFunc[T]  // nil = always true
	Action   ActionFunc[T] // runs between source exit and target enter
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, m *Machine[T]) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
