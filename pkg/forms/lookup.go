package forms

import (
	"fmt"

	"github.com/blockhire/portal/pkg/validator"
)

// LookupKind selects the issuer lookup form.
type LookupKind string

const (
	// LookupAuthorize grants an issuer access to an employee record.
	LookupAuthorize LookupKind = "authorize"
	// LookupVerify checks a document digest against an employee.
	LookupVerify LookupKind = "verify"
)

// NewLookupValidator returns the validator for an issuer lookup form.
func NewLookupValidator(kind LookupKind) (*validator.FormValidator, error) {
	v := validator.New(
		validator.WithLabel("empId", "Employee ID"),
		validator.WithLabel("userHash", "User Hash"),
		validator.WithLabel("docHash", "Document Hash"),
	)
	v.AddRule("empId", validator.EmployeeIDRule())

	switch kind {
	case LookupAuthorize:
		v.AddRule("userHash", validator.UserHashRule())
	case LookupVerify:
		v.AddRule("docHash", validator.DocumentHashRule())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLookup, kind)
	}
	return v, nil
}

// NewDocumentValidator returns the validator for the document upload form.
// The "document" value must be a validator.FileInfo.
func NewDocumentValidator() *validator.FormValidator {
	v := validator.New()
	v.AddRule("document", validator.DocumentRule())
	return v
}
