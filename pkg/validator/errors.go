package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRuleFile is returned when a rule file cannot be decoded.
	ErrInvalidRuleFile = errors.New("invalid rule file")

	// ErrInvalidPattern is returned when a rule file pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownCheck is returned when a rule file names a custom check that
	// is not registered.
	ErrUnknownCheck = errors.New("unknown custom check")

	// ErrInvalidLength is returned when a rule file declares negative or
	// inverted length bounds.
	ErrInvalidLength = errors.New("invalid length bounds")
)
