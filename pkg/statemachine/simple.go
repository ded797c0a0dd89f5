package statemachine

import (
	"context"
	"sync"
)

// SimpleStateMachine is an in-memory StateMachine safe for concurrent use.
// Transitions are indexed as [from][event][]Transition.
type SimpleStateMachine struct {
	currentState State
	transitions  map[string]map[string][]Transition
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, guards ...Guard) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		sm.transitions[from.Name()] = byEvent
	}

	// Several transitions per from/event are allowed; the first whose guards
	// pass wins.
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:   from,
		To:     to,
		Event:  event,
		Guards: guards,
	})
	return nil
}

// Fire applies the first eligible transition for event. When every
// candidate is rejected, the returned ErrTransitionRejected wraps the first
// guard error.
func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	t, err := sm.selectLocked(ctx, event, data)
	if err != nil {
		return err
	}

	sm.currentState = t.To
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, err := sm.selectLocked(ctx, event, data)
	return err == nil
}

func (sm *SimpleStateMachine) selectLocked(ctx context.Context, event Event, data any) (*Transition, error) {
	stateName := sm.currentState.Name()
	candidates := sm.transitions[stateName][event.Name()]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(stateName, event.Name())
	}

	var cause error
	for i := range candidates {
		err := runGuards(ctx, candidates[i].Guards, sm.currentState, event, data)
		if err == nil {
			return &candidates[i], nil
		}
		if cause == nil {
			cause = err
		}
	}
	return nil, NewErrTransitionRejected(stateName, event.Name(), cause)
}

func runGuards(ctx context.Context, guards []Guard, from State, event Event, data any) error {
	for _, guard := range guards {
		if guard == nil {
			continue
		}
		if err := guard(ctx, from, event, data); err != nil {
			return err
		}
	}
	return nil
}
