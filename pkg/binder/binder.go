package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Func binds an HTTP request into v.
type Func func(r *http.Request, v any) error

const (
	mimeJSON      = "application/json"
	mimeForm      = "application/x-www-form-urlencoded"
	mimeMultipart = "multipart/form-data"
)

// Record binds JSON, urlencoded and multipart bodies into a
// *map[string]any, choosing the decoder from the Content-Type header.
func Record() Func {
	jsonBinder, formBinder := JSON(), Form()
	return func(r *http.Request, v any) error {
		mediaType, _, err := mediaType(r)
		if err != nil {
			return err
		}
		switch mediaType {
		case mimeJSON:
			return jsonBinder(r, v)
		case mimeForm, mimeMultipart:
			return formBinder(r, v)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}
	}
}

func mediaType(r *http.Request) (string, map[string]string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", nil, ErrMissingContentType
	}
	mt, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return mt, params, nil
}
