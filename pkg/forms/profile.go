package forms

import (
	"time"

	"github.com/blockhire/portal/pkg/validator"
)

// NewProfileValidator returns the validator for the full profile form.
// A nil clock means time.Now. Overlays loaded from rule files are applied
// last, so they can tighten built-in fields or add new ones.
func NewProfileValidator(now func() time.Time, overlays ...validator.RuleSet) *validator.FormValidator {
	if now == nil {
		now = time.Now
	}

	var opts []validator.Option
	for _, rs := range overlays {
		opts = append(opts, rs.LabelOptions()...)
	}

	v := validator.New(opts...)
	v.AddRule("firstName", validator.FirstNameRule())
	v.AddRule("lastName", validator.LastNameRule())
	v.AddRule("dateOfBirth", validator.DateOfBirthRuleAt(now))
	v.AddRule("mobile", validator.MobileRule())
	v.AddRule("address", validator.AddressRule())
	v.AddRule("jobDesignation", validator.JobDesignationRule())
	v.AddRule("department", validator.DepartmentRule())
	for _, rs := range overlays {
		rs.Apply(v)
	}
	return v
}
