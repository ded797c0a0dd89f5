package forms

import "errors"

var (
	ErrUnknownMode   = errors.New("unknown auth mode")
	ErrUnknownStep   = errors.New("unknown profile step")
	ErrUnknownLookup = errors.New("unknown lookup kind")
	ErrLastStep      = errors.New("already at the last step")
	ErrFirstStep     = errors.New("already at the first step")
)
