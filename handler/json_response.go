package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/blockhire/portal/pkg/binder"
	"github.com/blockhire/portal/pkg/validator"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONMeta sets the envelope's meta object.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// JSON renders v as {"data": v}. Errors are rendered as with JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": {...}} with a status derived from it.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	if err != nil {
		r.body.Error = errorToDetail(err, &r.status)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Validation renders a validator result: 200 with the result as data when
// valid, 422 with per-field details otherwise.
func Validation(res validator.Result, opts ...JSONOption) Response {
	if res.IsValid {
		return JSON(res, opts...)
	}
	return JSONError(ValidationErrorFromResult(res), opts...)
}

// StatusOf returns the HTTP status JSONError would use for err.
func StatusOf(err error) int {
	status := http.StatusInternalServerError
	errorToDetail(err, &status)
	return status
}

func errorToDetail(err error, status *int) *ErrorDetail {
	var (
		valErr   ValidationError
		fieldErr validator.ValidationErrors
		httpErr  HTTPError
	)

	switch {
	case errors.As(err, &valErr):
		return validationDetail(valErr, status)

	case errors.As(err, &fieldErr):
		return validationDetail(validationErrorFromErrors(fieldErr), status)

	case errors.As(err, &httpErr):
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}

	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		*status = http.StatusUnsupportedMediaType
		return &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}

	case errors.Is(err, binder.ErrBodyTooLarge):
		*status = http.StatusRequestEntityTooLarge
		return &ErrorDetail{Code: ErrRequestEntityTooLarge.Key, Message: err.Error()}

	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidForm):
		*status = http.StatusBadRequest
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
}

func validationDetail(e ValidationError, status *int) *ErrorDetail {
	*status = http.StatusUnprocessableEntity
	detail := &ErrorDetail{Code: "validation_error", Message: "validation failed"}
	if len(e) > 0 {
		detail.Details = make(map[string][]string, len(e))
		maps.Copy(detail.Details, e)
	}
	return detail
}
