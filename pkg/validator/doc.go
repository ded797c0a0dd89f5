// Package validator implements the field validation engine shared by the
// portal's registration, login, profile, lookup and document forms.
//
// A FormValidator is a registry of field name -> Rule. Each Rule carries
// optional constraints (Required, MinLength, MaxLength, Pattern) and an
// optional Custom function. Validate evaluates a record (map[string]any)
// against every registered field and returns a Result holding at most one
// message per field.
//
// # Check order
//
// For each field the checks run as required, min length, max length,
// pattern, custom. The first failing check produces the field's message and
// the remaining checks for that field are skipped. Other fields are still
// evaluated, so a single pass reports every offending field.
//
// Empty values (nil, blank after trimming, or values with no string form)
// fail only the required check; optional empty fields are never checked
// further.
//
// # Messages
//
// Built-in checks produce "{Label} is required", "{Label} must be at least
// {n} characters", "{Label} must be no more than {n} characters" and
// "{Label} format is invalid". Labels come from WithLabel overrides, then
// the built-in table (email -> Email, mobile -> Mobile Number, ...), then
// the field name with an upper-cased first letter. Custom messages are
// returned verbatim.
//
// # Usage
//
//	v := validator.New()
//	v.AddRule("email", validator.EmailRule())
//	v.AddRule("password", validator.PasswordRule())
//	v.AddRule("confirmPassword", validator.ConfirmPasswordRule(password))
//
//	res := v.Validate(map[string]any{"email": "a@b.com"})
//	if !res.IsValid {
//		// res.Errors["password"] == "Password is required"
//	}
//
// Re-registering a field replaces its rule; login pages swap PasswordRule
// for LoginPasswordRule that way.
//
// Rules can also be declared in YAML and loaded with LoadRules.
//
// Custom functions are trusted code: a panic inside one is not recovered.
package validator
