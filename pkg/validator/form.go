package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule describes the constraints for a single form field.
// Zero values mean "unset": MinLength and MaxLength of 0 are not checked,
// a nil Pattern or Custom is skipped.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp

	// Custom runs last and returns a complete, user-facing message,
	// or an empty string when the value is acceptable.
	Custom func(value any) string
}

// Result is the outcome of a single validation pass.
type Result struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// Has reports whether the field failed validation.
func (r Result) Has(field string) bool {
	_, ok := r.Errors[field]
	return ok
}

// Get returns the error message for the field, if any.
func (r Result) Get(field string) string {
	return r.Errors[field]
}

// Err converts the result into ValidationErrors sorted by field name.
// Returns nil when the result is valid.
func (r Result) Err() error {
	if r.IsValid || len(r.Errors) == 0 {
		return nil
	}

	fields := make([]string, 0, len(r.Errors))
	for field := range r.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	errs := make(ValidationErrors, 0, len(fields))
	for _, field := range fields {
		errs.Add(ValidationError{Field: field, Message: r.Errors[field]})
	}
	return errs
}

var defaultLabels = map[string]string{
	"email":           "Email",
	"password":        "Password",
	"confirmPassword": "Confirm Password",
	"firstName":       "First Name",
	"lastName":        "Last Name",
	"dateOfBirth":     "Date of Birth",
	"mobile":          "Mobile Number",
	"address":         "Address",
	"jobDesignation":  "Job Designation",
	"department":      "Department",
}

// Option configures a FormValidator.
type Option func(*FormValidator)

// WithLabel overrides the human-readable label used in messages for a field.
// Empty field names or labels are ignored.
func WithLabel(field, label string) Option {
	return func(v *FormValidator) {
		if field == "" || label == "" {
			return
		}
		v.labels[field] = label
	}
}

// FormValidator holds per-field rules and evaluates records against them.
// It keeps no form values between calls and is not safe for concurrent
// mutation; create one per form.
type FormValidator struct {
	rules  map[string]Rule
	labels map[string]string
}

// New creates an empty validator.
func New(opts ...Option) *FormValidator {
	v := &FormValidator{
		rules:  make(map[string]Rule),
		labels: make(map[string]string),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddRule registers the rule for field, replacing any previous one.
func (v *FormValidator) AddRule(field string, rule Rule) {
	v.rules[field] = rule
}

// Fields returns the registered field names in sorted order.
func (v *FormValidator) Fields() []string {
	fields := make([]string, 0, len(v.rules))
	for field := range v.rules {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Validate checks every registered field against data.
// Keys in data without a rule are ignored; registered fields missing from
// data are treated as empty. Every failing field is reported, one message each.
func (v *FormValidator) Validate(data map[string]any) Result {
	errs := make(map[string]string)
	for field, rule := range v.rules {
		if msg := v.check(field, rule, data[field]); msg != "" {
			errs[field] = msg
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateFields checks only the listed fields. Fields without a registered
// rule are skipped.
func (v *FormValidator) ValidateFields(data map[string]any, fields ...string) Result {
	errs := make(map[string]string)
	for _, field := range fields {
		rule, ok := v.rules[field]
		if !ok {
			continue
		}
		if msg := v.check(field, rule, data[field]); msg != "" {
			errs[field] = msg
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// check runs the rule's constraints in order and returns the first failure.
func (v *FormValidator) check(field string, rule Rule, value any) string {
	str, ok := stringify(value)
	empty := !ok || strings.TrimSpace(str) == ""

	if empty {
		if rule.Required {
			return v.Label(field) + " is required"
		}
		return ""
	}

	length := utf8.RuneCountInString(str)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", v.Label(field), rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Sprintf("%s must be no more than %d characters", v.Label(field), rule.MaxLength)
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
		return v.Label(field) + " format is invalid"
	}
	if rule.Custom != nil {
		return rule.Custom(value)
	}
	return ""
}

// Label resolves the display label for field: instance overrides first,
// then the built-in table, then the field name with its first letter
// upper-cased.
func (v *FormValidator) Label(field string) string {
	if label, ok := v.labels[field]; ok {
		return label
	}
	if label, ok := defaultLabels[field]; ok {
		return label
	}
	return capitalize(field)
}

// capitalize title-cases the first rune only. Casers hold state, so a new
// one is built per call.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und, cases.NoLower).String(s[:size]) + s[size:]
}
