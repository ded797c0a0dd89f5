package forms_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockhire/portal/pkg/forms"
	"github.com/blockhire/portal/pkg/validator"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
}

func validProfile() map[string]any {
	return map[string]any{
		"firstName":      "Ada",
		"lastName":       "Lovelace",
		"dateOfBirth":    "1990-12-10",
		"mobile":         "+4412345678",
		"address":        "12 St James's Square, London",
		"jobDesignation": "Analyst",
		"department":     "Engineering",
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, err := forms.ParseMode("register")
	require.NoError(t, err)
	assert.Equal(t, forms.ModeRegister, mode)

	_, err = forms.ParseMode("signup")
	assert.ErrorIs(t, err, forms.ErrUnknownMode)
}

func TestAuthForm(t *testing.T) {
	t.Parallel()

	t.Run("login only requires a password", func(t *testing.T) {
		t.Parallel()
		f := forms.NewAuthForm(forms.ModeLogin)

		res := f.Validate(map[string]any{"email": "a@b.com", "password": "x"})

		assert.True(t, res.IsValid)
		assert.Equal(t, []string{"email", "password"}, f.Fields())
	})

	t.Run("register applies the strength policy", func(t *testing.T) {
		t.Parallel()
		f := forms.NewAuthForm(forms.ModeRegister)

		res := f.Validate(map[string]any{"email": "a@b.com", "password": "abcdefgh", "confirmPassword": "abcdefgh"})

		assert.Equal(t, map[string]string{
			"password": "Password must contain at least one uppercase letter",
		}, res.Errors)
	})

	t.Run("register compares the confirmation with the submitted password", func(t *testing.T) {
		t.Parallel()
		f := forms.NewAuthForm(forms.ModeRegister)

		res := f.Validate(map[string]any{"email": "a@b.com", "password": "Secret1!", "confirmPassword": "Other"})
		assert.Equal(t, "Passwords do not match", res.Get("confirmPassword"))

		res = f.Validate(map[string]any{"email": "a@b.com", "password": "Secret1!", "confirmPassword": "Secret1!"})
		assert.True(t, res.IsValid)
	})

	t.Run("switching modes swaps the rules", func(t *testing.T) {
		t.Parallel()
		f := forms.NewAuthForm(forms.ModeRegister)
		data := map[string]any{"email": "a@b.com", "password": "short"}

		assert.False(t, f.Validate(data).IsValid)

		f.SwitchMode(forms.ModeLogin)
		assert.Equal(t, forms.ModeLogin, f.Mode())
		assert.True(t, f.Validate(data).IsValid)

		f.SwitchMode(forms.ModeRegister)
		assert.Equal(t, "Confirm Password is required", f.Validate(data).Get("confirmPassword"))
	})

	t.Run("unknown mode falls back to login", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, forms.ModeLogin, forms.NewAuthForm("other").Mode())
	})
}

func TestProfileValidator(t *testing.T) {
	t.Parallel()

	v := forms.NewProfileValidator(fixedNow)

	assert.True(t, v.Validate(validProfile()).IsValid)

	res := v.Validate(map[string]any{})
	assert.Len(t, res.Errors, 7)
	assert.Equal(t, "Job Designation is required", res.Get("jobDesignation"))
}

func TestProfileValidator_Overlay(t *testing.T) {
	t.Parallel()

	rs, err := validator.LoadRules(strings.NewReader(`
department:
  required: true
  maxLength: 10
employeeCode:
  label: Employee Code
  required: true
  pattern: '^[A-Z]{3}-[0-9]{4}$'
`), nil)
	require.NoError(t, err)

	v := forms.NewProfileValidator(fixedNow, rs)
	data := validProfile()
	data["department"] = "Human Resources"

	res := v.Validate(data)

	assert.Equal(t, map[string]string{
		"department":   "Department must be no more than 10 characters",
		"employeeCode": "Employee Code is required",
	}, res.Errors)
}

func TestParseStep(t *testing.T) {
	t.Parallel()

	step, err := forms.ParseStep("contact")
	require.NoError(t, err)
	assert.Equal(t, forms.StepContact, step)

	_, err = forms.ParseStep("documents")
	assert.ErrorIs(t, err, forms.ErrUnknownStep)
}

func TestWizard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("walks forward when each step is valid", func(t *testing.T) {
		t.Parallel()
		w, err := forms.NewWizard(forms.StepPersonal, fixedNow)
		require.NoError(t, err)
		assert.InDelta(t, 33.33, w.Progress(), 0.01)

		res, err := w.Next(ctx, validProfile())
		require.NoError(t, err)
		assert.True(t, res.IsValid)
		assert.Equal(t, forms.StepContact, w.Step())

		_, err = w.Next(ctx, validProfile())
		require.NoError(t, err)
		assert.Equal(t, forms.StepEmployment, w.Step())
		assert.InDelta(t, 100, w.Progress(), 0.001)

		_, err = w.Next(ctx, validProfile())
		assert.ErrorIs(t, err, forms.ErrLastStep)
	})

	t.Run("stays on a step with errors and reports only its fields", func(t *testing.T) {
		t.Parallel()
		w, err := forms.NewWizard(forms.StepPersonal, fixedNow)
		require.NoError(t, err)

		data := validProfile()
		data["firstName"] = "J"
		data["mobile"] = "0123"

		res, err := w.Next(ctx, data)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
		assert.Equal(t, map[string]string{"firstName": "First Name must be at least 2 characters"}, res.Errors)
		assert.Equal(t, forms.StepPersonal, w.Step())
	})

	t.Run("contact step gates on contact fields", func(t *testing.T) {
		t.Parallel()
		w, err := forms.NewWizard(forms.StepContact, fixedNow)
		require.NoError(t, err)

		res, err := w.Next(ctx, map[string]any{"mobile": "0123456789", "address": "short"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"mobile":  "Mobile Number format is invalid",
			"address": "Address must be at least 10 characters",
		}, res.Errors)
	})

	t.Run("back moves to the previous step", func(t *testing.T) {
		t.Parallel()
		w, err := forms.NewWizard(forms.StepEmployment, fixedNow)
		require.NoError(t, err)

		require.NoError(t, w.Back(ctx))
		assert.Equal(t, forms.StepContact, w.Step())
		require.NoError(t, w.Back(ctx))
		assert.Equal(t, forms.StepPersonal, w.Step())
		assert.ErrorIs(t, w.Back(ctx), forms.ErrFirstStep)
	})

	t.Run("submit validates everything", func(t *testing.T) {
		t.Parallel()
		w, err := forms.NewWizard(forms.StepPersonal, fixedNow)
		require.NoError(t, err)

		data := validProfile()
		delete(data, "department")

		res := w.Submit(data)
		assert.Equal(t, map[string]string{"department": "Department is required"}, res.Errors)
	})

	t.Run("validate step without moving", func(t *testing.T) {
		t.Parallel()
		w, err := forms.NewWizard(forms.StepEmployment, fixedNow)
		require.NoError(t, err)

		res := w.ValidateStep(map[string]any{"jobDesignation": "Analyst"})

		assert.Equal(t, map[string]string{"department": "Department is required"}, res.Errors)
		assert.Equal(t, forms.StepEmployment, w.Step())
	})

	t.Run("unknown start step", func(t *testing.T) {
		t.Parallel()
		_, err := forms.NewWizard("review", fixedNow)
		assert.ErrorIs(t, err, forms.ErrUnknownStep)
	})
}

func TestStepHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"mobile", "address"}, forms.StepFields(forms.StepContact))
	assert.Nil(t, forms.StepFields("review"))
	assert.InDelta(t, 66.67, forms.StepProgress(forms.StepContact), 0.01)
	assert.Zero(t, forms.StepProgress("review"))
}

func TestLookupValidator(t *testing.T) {
	t.Parallel()

	hash := strings.Repeat("0f", 32)

	v, err := forms.NewLookupValidator(forms.LookupVerify)
	require.NoError(t, err)
	res := v.Validate(map[string]any{})
	assert.Equal(t, map[string]string{
		"empId":   "Employee ID is required",
		"docHash": "Document Hash is required",
	}, res.Errors)
	assert.True(t, v.Validate(map[string]any{"empId": "EMP204511", "docHash": hash}).IsValid)

	v, err = forms.NewLookupValidator(forms.LookupAuthorize)
	require.NoError(t, err)
	res = v.Validate(map[string]any{"empId": "EMP204511", "userHash": "abc"})
	assert.Equal(t, map[string]string{"userHash": "User Hash format is invalid"}, res.Errors)

	_, err = forms.NewLookupValidator("revoke")
	assert.ErrorIs(t, err, forms.ErrUnknownLookup)
}

func TestDocumentValidator(t *testing.T) {
	t.Parallel()

	v := forms.NewDocumentValidator()

	res := v.Validate(map[string]any{"document": validator.FileInfo{Name: "cv.pdf", ContentType: "application/pdf", Size: 100}})
	assert.True(t, res.IsValid)

	res = v.Validate(map[string]any{"document": validator.FileInfo{Name: "cv.pdf", ContentType: "application/pdf", Size: validator.MaxDocumentSize + 1}})
	assert.Equal(t, "File size must be less than 10MB", res.Get("document"))
}
