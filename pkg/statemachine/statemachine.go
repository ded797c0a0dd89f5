package statemachine

import (
	"context"
)

// State is a named node of the machine, e.g. a wizard step.
type State interface {
	Name() string
}

// Event triggers transitions between states.
type Event interface {
	Name() string
}

// Guard decides whether a transition may proceed. A non-nil error rejects it
// and is kept as the cause of the resulting ErrTransitionRejected.
type Guard func(ctx context.Context, from State, event Event, data any) error

// Transition moves From to To on Event when every guard passes.
type Transition struct {
	From   State
	To     State
	Event  Event
	Guards []Guard
}

// StateMachine is a finite state machine driven by events.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event, guards ...Guard) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
}

// StringState is a State backed by its name.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent is an Event backed by its name.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}
