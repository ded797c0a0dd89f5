// Package statemachine provides a small finite state machine used to drive
// multi-step forms.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. Transitions carry guards, which return
// an error to reject a transition, and that error is kept as the cause of
// the resulting *ErrTransitionRejected so callers can surface why a step
// could not advance:
//
//	const (
//		Personal = statemachine.StringState("personal")
//		Contact  = statemachine.StringState("contact")
//		Next     = statemachine.StringEvent("next")
//	)
//
//	sm := statemachine.MustNew(Personal,
//		statemachine.WithTransition(Personal, Contact, Next,
//			statemachine.WithGuard(func(ctx context.Context, from statemachine.State, e statemachine.Event, data any) error {
//				return validateStep(data)
//			}),
//		),
//	)
//
//	if err := sm.Fire(ctx, Next, form); err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			// render field errors
//		}
//	}
//
// SimpleStateMachine guards its state with a RWMutex. Guards run
// while the lock is held and must not call back into the machine.
package statemachine
