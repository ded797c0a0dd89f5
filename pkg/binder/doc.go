// Package binder decodes HTTP request bodies for handler.Wrap.
//
// Form submissions reach the validator as map[string]any records, so the
// binders here fill a *map[string]any rather than tagged structs. Record
// picks JSON or Form by Content-Type; each binder also works on its own.
//
// Errors wrap the package sentinels: ErrMissingContentType and
// ErrUnsupportedMediaType for the wrong kind of body, ErrInvalidJSON and
// ErrInvalidForm for malformed input, ErrBodyTooLarge past the size caps.
package binder
