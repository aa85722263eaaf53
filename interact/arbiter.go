package interact

import (
	"fmt"
	"strings"
)

// Policy selects how competing prompts share the text surface
type Policy uint8

const (
	// PolicyLastWriter lets every prompting zone write, the last evaluated wins
	PolicyLastWriter Policy = iota
	// PolicyNearest lets only the nearest prompting zone write
	PolicyNearest
)

// ParsePolicy resolves a policy name
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "", "last", "last-writer", "lastwriter":
		return PolicyLastWriter, nil
	case "nearest":
		return PolicyNearest, nil
	}
	return PolicyLastWriter, fmt.Errorf("unknown text policy %q", name)
}

func (p Policy) String() string {
	switch p {
	case PolicyLastWriter:
		return "last-writer"
	case PolicyNearest:
		return "nearest"
	}
	return "unknown"
}

type promptRequest struct {
	owner    string
	text     string
	distance float64
}

// Arbiter owns the single shared text slot and records which zone wrote it
type Arbiter struct {
	surface TextSurface
	policy  Policy

	owner string
	text  string

	pending  promptRequest
	hasPend  bool
	onChange func(owner, text string)
}

// NewArbiter creates an arbiter, surface may be nil
func NewArbiter(surface TextSurface, policy Policy) *Arbiter {
	return &Arbiter{surface: surface, policy: policy}
}

// SetSurface replaces the text surface
func (a *Arbiter) SetSurface(surface TextSurface) {
	a.surface = surface
}

// SetPolicy changes the prompt policy, pending requests are dropped
func (a *Arbiter) SetPolicy(p Policy) {
	a.policy = p
	a.hasPend = false
}

// Policy returns the active policy
func (a *Arbiter) Policy() Policy {
	return a.policy
}

// Owner returns the zone that last wrote the surface, empty when cleared
func (a *Arbiter) Owner() string {
	return a.owner
}

// Text returns the current surface contents
func (a *Arbiter) Text() string {
	return a.text
}

// Show writes text immediately on behalf of owner
func (a *Arbiter) Show(owner, text string) {
	a.write(owner, text)
}

// Request submits a prompt for this tick
// Under PolicyLastWriter it is written at once, under PolicyNearest it waits for Flush
func (a *Arbiter) Request(owner, text string, distance float64) {
	if a.policy == PolicyLastWriter {
		a.write(owner, text)
		return
	}
	if !a.hasPend || distance < a.pending.distance {
		a.pending = promptRequest{owner: owner, text: text, distance: distance}
		a.hasPend = true
	}
}

// Flush commits the winning prompt request of the tick
func (a *Arbiter) Flush() {
	if !a.hasPend {
		return
	}
	a.hasPend = false
	a.write(a.pending.owner, a.pending.text)
}

// Clear empties the surface if owner holds it
func (a *Arbiter) Clear(owner string) bool {
	if owner == "" || a.owner != owner {
		return false
	}
	a.write("", "")
	return true
}

// ClearIf empties the surface only if owner holds it and it still shows text
func (a *Arbiter) ClearIf(owner, text string) bool {
	if a.text != text {
		return false
	}
	return a.Clear(owner)
}

func (a *Arbiter) write(owner, text string) {
	if owner == a.owner && text == a.text {
		return
	}
	a.owner = owner
	a.text = text
	if a.surface != nil {
		a.surface.SetText(text)
	}
	if a.onChange != nil {
		a.onChange(owner, text)
	}
}
