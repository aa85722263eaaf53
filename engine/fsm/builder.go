package fsm

import (
	"fmt"
	"time"
)

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0, 2),
	}
	m.nodes[id] = node
	return node
}

// AddTransition appends a transition to a specific node
// Returns an error when either end of the edge is unknown
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("transition source state %d not found", sourceID)
	}
	if _, ok := m.nodes[t.TargetID]; !ok {
		return fmt.Errorf("transition target state %d not found", t.TargetID)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// HasEdge reports whether a transition from -> to is declared
func (m *Machine[T]) HasEdge(from, to StateID) bool {
	node, ok := m.nodes[from]
	if !ok {
		return false
	}
	for _, t := range node.Transitions {
		if t.TargetID == to {
			return true
		}
	}
	return false
}

// Edges returns every declared (from, to) pair
func (m *Machine[T]) Edges() [][2]StateID {
	var edges [][2]StateID
	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			edges = append(edges, [2]StateID{id, t.TargetID})
		}
	}
	return edges
}

// StateTimeExceeds returns a guard that passes once the machine has spent d in its current state
func StateTimeExceeds[T any](d time.Duration) GuardFunc[T] {
	return func(_ T, m *Machine[T]) bool {
		return m.timeInState >= d
	}
}

// Not inverts a guard
func Not[T any](g GuardFunc[T]) GuardFunc[T] {
	return func(ctx T, m *Machine[T]) bool {
		return !g(ctx, m)
	}
}

// All passes when every guard passes
func All[T any](guards ...GuardFunc[T]) GuardFunc[T] {
	return func(ctx T, m *Machine[T]) bool {
		for _, g := range guards {
			if !g(ctx, m) {
				return false
			}
		}
		return true
	}
}
