package forms

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/blockhire/portal/pkg/statemachine"
	"github.com/blockhire/portal/pkg/validator"
)

// Step is one page of the profile wizard.
type Step = statemachine.StringState

const (
	StepPersonal   Step = "personal"
	StepContact    Step = "contact"
	StepEmployment Step = "employment"
)

var (
	eventNext = statemachine.StringEvent("next")
	eventBack = statemachine.StringEvent("back")
)

// Steps lists the wizard steps in order.
var Steps = []Step{StepPersonal, StepContact, StepEmployment}

var stepFields = map[Step][]string{
	StepPersonal:   {"firstName", "lastName", "dateOfBirth"},
	StepContact:    {"mobile", "address"},
	StepEmployment: {"jobDesignation", "department"},
}

// ParseStep converts a path value to a Step.
func ParseStep(s string) (Step, error) {
	step := Step(s)
	if !slices.Contains(Steps, step) {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
	return step, nil
}

// StepFields returns the profile fields shown on step.
func StepFields(step Step) []string {
	return slices.Clone(stepFields[step])
}

// Wizard walks the profile form one step at a time. Moving forward requires
// the current step's fields to validate; moving back never does.
type Wizard struct {
	sm statemachine.StateMachine
	v  *validator.FormValidator
}

// NewWizard creates a wizard positioned at start. A nil clock means time.Now.
// Overlays are passed to NewProfileValidator.
func NewWizard(start Step, now func() time.Time, overlays ...validator.RuleSet) (*Wizard, error) {
	if !slices.Contains(Steps, start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, start)
	}

	w := &Wizard{v: NewProfileValidator(now, overlays...)}

	opts := make([]statemachine.Option, 0, 2*(len(Steps)-1))
	for i := 0; i < len(Steps)-1; i++ {
		from, to := Steps[i], Steps[i+1]
		opts = append(opts,
			statemachine.WithTransition(from, to, eventNext, statemachine.WithGuard(w.stepComplete)),
			statemachine.WithTransition(to, from, eventBack),
		)
	}

	w.sm = statemachine.MustNew(start, opts...)
	return w, nil
}

func (w *Wizard) stepComplete(_ context.Context, from statemachine.State, _ statemachine.Event, data any) error {
	record, _ := data.(map[string]any)
	return w.v.ValidateFields(record, stepFields[Step(from.Name())]...).Err()
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return Step(w.sm.Current().Name())
}

// Next validates the current step against data and advances on success.
// On failure the returned Result holds the step's field errors and the
// wizard stays put. ErrLastStep is returned from the final step.
func (w *Wizard) Next(ctx context.Context, data map[string]any) (validator.Result, error) {
	err := w.sm.Fire(ctx, eventNext, data)
	if err == nil {
		return validator.Result{IsValid: true, Errors: map[string]string{}}, nil
	}

	var verrs validator.ValidationErrors
	switch {
	case statemachine.IsNoTransitionAvailableError(err):
		return validator.Result{}, ErrLastStep
	case statemachine.IsTransitionRejectedError(err) && errors.As(err, &verrs):
		return validator.Result{IsValid: false, Errors: verrs.Map()}, nil
	}
	return validator.Result{}, err
}

// Back returns to the previous step. ErrFirstStep is returned from the first.
func (w *Wizard) Back(ctx context.Context) error {
	if !w.sm.CanFire(ctx, eventBack, nil) {
		return ErrFirstStep
	}
	return w.sm.Fire(ctx, eventBack, nil)
}

// ValidateStep validates the current step's fields without moving.
func (w *Wizard) ValidateStep(data map[string]any) validator.Result {
	return w.v.ValidateFields(data, stepFields[w.Step()]...)
}

// Submit validates the complete profile regardless of the current step.
func (w *Wizard) Submit(data map[string]any) validator.Result {
	return w.v.Validate(data)
}

// Progress returns completion of the current step as a percentage.
func (w *Wizard) Progress() float64 {
	return StepProgress(w.Step())
}

// StepProgress returns the percentage shown for step, 0 for unknown steps.
func StepProgress(step Step) float64 {
	i := slices.Index(Steps, step)
	if i < 0 {
		return 0
	}
	return float64(i+1) / float64(len(Steps)) * 100
}
