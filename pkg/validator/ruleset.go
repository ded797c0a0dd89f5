package validator

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Check is a named custom validator that rule files can reference.
type Check func(value any) string

// DefaultChecks returns the custom checks rule files may reference by name.
func DefaultChecks() map[string]Check {
	return map[string]Check{
		"password_strength": PasswordStrength,
		"date_of_birth":     DateOfBirthCheck(time.Now),
		"mobile_digits":     MobileDigits,
	}
}

// RuleSet is a decoded rule file: rules plus optional label overrides.
type RuleSet struct {
	Rules  map[string]Rule
	Labels map[string]string
}

// Validator builds a FormValidator with every rule and label of the set.
func (rs RuleSet) Validator(opts ...Option) *FormValidator {
	v := New(slices.Concat(opts, rs.LabelOptions())...)
	rs.Apply(v)
	return v
}

// LabelOptions returns a WithLabel option per label in the set.
func (rs RuleSet) LabelOptions() []Option {
	opts := make([]Option, 0, len(rs.Labels))
	for _, field := range slices.Sorted(maps.Keys(rs.Labels)) {
		opts = append(opts, WithLabel(field, rs.Labels[field]))
	}
	return opts
}

// Apply registers every rule of the set on v, replacing existing ones.
func (rs RuleSet) Apply(v *FormValidator) {
	for field, rule := range rs.Rules {
		v.AddRule(field, rule)
	}
}

type ruleSpec struct {
	Label     string `yaml:"label"`
	Required  bool   `yaml:"required"`
	MinLength int    `yaml:"minLength"`
	MaxLength int    `yaml:"maxLength"`
	Pattern   string `yaml:"pattern"`
	Custom    string `yaml:"custom"`
}

// LoadRules decodes a YAML rule file of the form
//
//	email:
//	  required: true
//	  maxLength: 254
//	  pattern: '^[^\s@]+@[^\s@]+\.[^\s@]+$'
//	password:
//	  required: true
//	  custom: password_strength
//
// Custom names resolve against checks; a nil map means DefaultChecks.
func LoadRules(r io.Reader, checks map[string]Check) (RuleSet, error) {
	if checks == nil {
		checks = DefaultChecks()
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var specs map[string]ruleSpec
	if err := dec.Decode(&specs); err != nil && !errors.Is(err, io.EOF) {
		return RuleSet{}, errors.Join(ErrInvalidRuleFile, err)
	}

	rs := RuleSet{
		Rules:  make(map[string]Rule, len(specs)),
		Labels: make(map[string]string),
	}
	for field, spec := range specs {
		rule, err := spec.rule(checks)
		if err != nil {
			return RuleSet{}, fmt.Errorf("field %q: %w", field, err)
		}
		rs.Rules[field] = rule
		if spec.Label != "" {
			rs.Labels[field] = spec.Label
		}
	}
	return rs, nil
}

func (s ruleSpec) rule(checks map[string]Check) (Rule, error) {
	if s.MinLength < 0 || s.MaxLength < 0 || (s.MaxLength > 0 && s.MinLength > s.MaxLength) {
		return Rule{}, fmt.Errorf("%w: min %d, max %d", ErrInvalidLength, s.MinLength, s.MaxLength)
	}

	rule := Rule{
		Required:  s.Required,
		MinLength: s.MinLength,
		MaxLength: s.MaxLength,
	}

	if s.Pattern != "" {
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return Rule{}, errors.Join(ErrInvalidPattern, err)
		}
		rule.Pattern = re
	}

	if s.Custom != "" {
		check, ok := checks[s.Custom]
		if !ok || check == nil {
			return Rule{}, fmt.Errorf("%w: %s", ErrUnknownCheck, s.Custom)
		}
		rule.Custom = check
	}

	return rule, nil
}
