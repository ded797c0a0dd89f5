package binder

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

const (
	// DefaultMaxFormSize caps urlencoded and multipart bodies. It sits above
	// the 10MB document limit so oversized uploads reach validation and get a
	// field message instead of a transport error.
	DefaultMaxFormSize = 32 << 20

	// DefaultMaxMemory is the multipart part size kept in memory before
	// spilling to temporary files.
	DefaultMaxMemory = 10 << 20
)

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies into a *map[string]any. Each key takes its first value; uploaded
// files are stored as *multipart.FileHeader under their field name with the
// filename reduced to its base name.
func Form() Func {
	return func(r *http.Request, v any) error {
		mt, params, err := mediaType(r)
		if err != nil {
			return err
		}

		dst, ok := v.(*map[string]any)
		if !ok || dst == nil {
			return fmt.Errorf("%w: form binding needs *map[string]any, got %T", ErrInvalidTarget, v)
		}

		r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxFormSize)

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)

		switch mt {
		case mimeForm:
			if err := r.ParseForm(); err != nil {
				return formError(err)
			}
			values = r.PostForm

		case mimeMultipart:
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return formError(err)
			}
			values = r.MultipartForm.Value
			files = r.MultipartForm.File

		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mt, mimeForm, mimeMultipart)
		}

		record := make(map[string]any, len(values)+len(files))
		for key, vals := range values {
			if len(vals) > 0 {
				record[key] = vals[0]
			}
		}
		for key, headers := range files {
			if len(headers) > 0 {
				fh := headers[0]
				fh.Filename = sanitizeFilename(fh.Filename)
				record[key] = fh
			}
		}
		*dst = record
		return nil
	}
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}

// sanitizeFilename strips directory components and NUL bytes.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(filepath.Base(name), "\x00", "")
	if name == "." || name == ".." || name == "/" || name == "" {
		return "unnamed"
	}
	return name
}
