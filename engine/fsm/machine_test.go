package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stateIdle StateID = iota + 1
	stateArmed
	stateFired
)

const triggerPull Trigger = 1

type probe struct {
	armed bool
	log   []string
}

func newProbeMachine(t *testing.T) *Machine[*probe] {
	t.Helper()
	m := NewMachine[*probe]()

	idle := m.AddState(stateIdle, "Idle")
	idle.OnExit = append(idle.OnExit, func(p *probe) { p.log = append(p.log, "exit idle") })

	armed := m.AddState(stateArmed, "Armed")
	armed.OnEnter = append(armed.OnEnter, func(p *probe) { p.log = append(p.log, "enter armed") })
	armed.OnUpdate = append(armed.OnUpdate, func(p *probe) { p.log = append(p.log, "update armed") })

	fired := m.AddState(stateFired, "Fired")
	fired.OnEnter = append(fired.OnEnter, func(p *probe) { p.log = append(p.log, "enter fired") })

	require.NoError(t, m.AddTransition(stateIdle, Transition[*probe]{
		TargetID: stateArmed,
		Guard:    func(p *probe, _ *Machine[*probe]) bool { return p.armed },
		Action:   func(p *probe) { p.log = append(p.log, "arm") },
	}))
	require.NoError(t, m.AddTransition(stateArmed, Transition[*probe]{
		TargetID: stateFired,
		Trigger:  triggerPull,
	}))
	require.NoError(t, m.AddTransition(stateArmed, Transition[*probe]{
		TargetID: stateIdle,
		Guard:    Not(func(p *probe, _ *Machine[*probe]) bool { return p.armed }),
	}))
	return m
}

func TestMachineTickTransitionOrder(t *testing.T) {
	m := newProbeMachine(t)
	p := &probe{}
	require.NoError(t, m.Init(p, stateIdle))

	assert.Equal(t, 0, m.Update(p, time.Second))
	assert.Equal(t, "Idle", m.StateName())
	assert.Equal(t, time.Second, m.TimeInState())

	p.armed = true
	assert.Equal(t, 1, m.Update(p, time.Second))
	assert.Equal(t, stateArmed, m.State())
	assert.Equal(t, []string{"exit idle", "arm", "enter armed"}, p.log)
	assert.Equal(t, time.Duration(0), m.TimeInState())
}

func TestMachineTriggerOnlyFromOwningState(t *testing.T) {
	m := newProbeMachine(t)
	p := &probe{}
	require.NoError(t, m.Init(p, stateIdle))

	assert.False(t, m.HandleTrigger(p, triggerPull))
	assert.False(t, m.HandleTrigger(p, TriggerTick))

	p.armed = true
	m.Update(p, 0)
	assert.True(t, m.HandleTrigger(p, triggerPull))
	assert.Equal(t, stateFired, m.State())
	assert.False(t, m.HandleTrigger(p, triggerPull))
}

func TestMachineChainBound(t *testing.T) {
	m := NewMachine[*probe]()
	m.AddState(stateIdle, "A")
	m.AddState(stateArmed, "B")
	require.NoError(t, m.AddTransition(stateIdle, Transition[*probe]{TargetID: stateArmed}))
	require.NoError(t, m.AddTransition(stateArmed, Transition[*probe]{TargetID: stateIdle}))
	m.SetMaxChain(3)

	var hops int
	m.SetObserver(func(*probe, StateID, StateID) { hops++ })
	require.NoError(t, m.Init(&probe{}, stateIdle))

	assert.Equal(t, 3, m.Update(&probe{}, 0))
	assert.Equal(t, 3, hops)
}

func TestMachineEdges(t *testing.T) {
	m := newProbeMachine(t)
	assert.True(t, m.HasEdge(stateIdle, stateArmed))
	assert.False(t, m.HasEdge(stateIdle, stateFired))
	assert.Len(t, m.Edges(), 3)

	assert.Error(t, m.AddTransition(StateID(99), Transition[*probe]{TargetID: stateIdle}))
	assert.Error(t, m.AddTransition(stateIdle, Transition[*probe]{TargetID: StateID(99)}))
	assert.Error(t, m.Init(&probe{}, StateID(99)))
}

func TestStateTimeExceeds(t *testing.T) {
	m := NewMachine[*probe]()
	m.AddState(stateIdle, "Wait")
	m.AddState(stateFired, "Done")
	require.NoError(t, m.AddTransition(stateIdle, Transition[*probe]{
		TargetID: stateFired,
		Guard:    StateTimeExceeds[*probe](2 * time.Second),
	}))
	require.NoError(t, m.Init(&probe{}, stateIdle))

	m.Update(&probe{}, 1500*time.Millisecond)
	assert.Equal(t, stateIdle, m.State())
	m.Update(&probe{}, 500*time.Millisecond)
	assert.Equal(t, stateFired, m.State())
}
