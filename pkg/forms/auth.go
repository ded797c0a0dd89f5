package forms

import (
	"fmt"

	"github.com/blockhire/portal/pkg/validator"
)

// Mode selects which auth form is shown.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// ParseMode converts a path or query value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLogin, ModeRegister:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// AuthForm validates the combined login/registration form.
type AuthForm struct {
	mode Mode
	v    *validator.FormValidator
}

// NewAuthForm builds the form for mode. Unknown modes fall back to login.
func NewAuthForm(mode Mode) *AuthForm {
	f := &AuthForm{}
	f.SwitchMode(mode)
	return f
}

func (f *AuthForm) Mode() Mode {
	return f.mode
}

// SwitchMode rebuilds the rules for mode, as the page does when the user
// flips between the login and register tabs.
func (f *AuthForm) SwitchMode(mode Mode) {
	if mode != ModeRegister {
		mode = ModeLogin
	}

	v := validator.New()
	v.AddRule("email", validator.EmailRule())
	v.AddRule("password", validator.PasswordRule())
	if mode == ModeLogin {
		// Existing accounts may predate the strength policy.
		v.AddRule("password", validator.LoginPasswordRule())
	} else {
		v.AddRule("confirmPassword", validator.ConfirmPasswordRule(""))
	}

	f.mode = mode
	f.v = v
}

// Validate checks data. In register mode the confirmation rule is
// re-registered against the submitted password first.
func (f *AuthForm) Validate(data map[string]any) validator.Result {
	if f.mode == ModeRegister {
		f.v.AddRule("confirmPassword", validator.ConfirmPasswordRule(validator.String(data["password"])))
	}
	return f.v.Validate(data)
}

// Fields lists the fields checked in the current mode.
func (f *AuthForm) Fields() []string {
	return f.v.Fields()
}
