// Package handler turns typed handler functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value already decoded by
// the configured binders, and returns a Response:
//
//	func validateProfile(ctx handler.Context, rec map[string]any) handler.Response {
//		return handler.Validation(forms.NewProfileValidator(time.Now).Validate(rec))
//	}
//
//	r.Post("/profile", handler.Wrap(validateProfile,
//		handler.WithBinders[handler.Context, map[string]any](binder.Record()),
//		handler.WithErrorHandler[handler.Context, map[string]any](handler.NewErrorHandler(log)),
//	))
//
// # Error mapping
//
// JSONError and the default error handler derive the status from the error:
//
//   - ValidationError or validator.ValidationErrors: 422, code "validation_error",
//     per-field messages under details
//   - HTTPError: its Code and Key
//   - binder content-type errors: 415; size errors: 413; malformed bodies: 400
//   - anything else: 500 with a generic message
package handler
