package handler

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/blockhire/portal/pkg/logger"
	"github.com/blockhire/portal/pkg/validator"
)

// NewErrorHandler returns an ErrorHandler that logs the failure and writes
// the JSONError body. Client errors log at warn, server errors at error.
// Validation failures log only the failing field names.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := StatusOf(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		}
		if ve, ok := asValidation(err); ok {
			attrs = append(attrs, logger.Fields(ve...))
		} else {
			attrs = append(attrs, logger.Error(err))
		}
		log.LogAttrs(r.Context(), level, "request failed", attrs...)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}

func asValidation(err error) ([]string, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return slices.Sorted(maps.Keys(ve)), true
	}
	var fe validator.ValidationErrors
	if errors.As(err, &fe) {
		return fe.Fields(), true
	}
	return nil, false
}
