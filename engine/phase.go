package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a phase change absent from the transition table
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the discrete game state gating simulation and overlays
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseLevelUp
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseLevelUp:
		return "LEVEL_UP"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// transitions is the explicit table of legal phase changes
var transitions = map[Phase][]Phase{
	PhaseStart:    {PhasePlaying},
	PhasePlaying:  {PhaseLevelUp, PhaseGameOver},
	PhaseLevelUp:  {PhasePlaying},
	PhaseGameOver: {PhasePlaying, PhaseStart},
}

// PhaseListener observes accepted transitions
type PhaseListener func(from, to Phase)

// PhaseMachine holds the current phase and enforces the transition table
type PhaseMachine struct {
	current   Phase
	listeners []PhaseListener
}

// Current returns the active phase
func (m *PhaseMachine) Current() Phase {
	return m.current
}

// Is reports whether the active phase is p
func (m *PhaseMachine) Is(p Phase) bool {
	return m.current == p
}

// CanTransition reports whether to is reachable from the active phase
func (m *PhaseMachine) CanTransition(to Phase) bool {
	for _, next := range transitions[m.current] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves to the target phase and notifies listeners
func (m *PhaseMachine) Transition(to Phase) error {
	if !m.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, to)
	}
	from := m.current
	m.current = to
	for _, l := range m.listeners {
		l(from, to)
	}
	return nil
}

// OnTransition registers a listener called after every accepted transition
func (m *PhaseMachine) OnTransition(l PhaseListener) {
	m.listeners = append(m.listeners, l)
}
