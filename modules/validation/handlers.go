package validation

import (
	"errors"
	"log/slog"
	"maps"
	"mime/multipart"
	"net/http"
	"slices"
	"time"

	"github.com/blockhire/portal/handler"
	"github.com/blockhire/portal/pkg/binder"
	"github.com/blockhire/portal/pkg/forms"
	"github.com/blockhire/portal/pkg/logger"
	"github.com/blockhire/portal/pkg/validator"
)

// Record is a submitted form keyed by field name.
type Record = map[string]any

func (s *Service) wrap(h handler.HandlerFunc[handler.Context, Record]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, Record](bindRecord),
		handler.WithErrorHandler[handler.Context, Record](s.errorHandler),
		handler.WithDecorators[handler.Context, Record](s.timed),
	)
}

// timed logs how long the handler took, excluding binding and rendering.
func (s *Service) timed(next handler.HandlerFunc[handler.Context, Record]) handler.HandlerFunc[handler.Context, Record] {
	return func(ctx handler.Context, rec Record) handler.Response {
		start := time.Now()
		resp := next(ctx, rec)
		r := ctx.Request()
		s.log.DebugContext(ctx, "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Duration(time.Since(start)),
		)
		return resp
	}
}

// routeError renders err for requests that match no route.
func (s *Service) routeError(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.errorHandler(handler.NewContext(w, r), err)
	}
}

// bindRecord decodes bodies with a content type and leaves bodiless
// requests as an empty record.
func bindRecord(r *http.Request, v any) error {
	if r.ContentLength == 0 && r.Header.Get("Content-Type") == "" {
		return nil
	}
	return binder.Record()(r, v)
}

func (s *Service) auth(ctx handler.Context, rec Record) handler.Response {
	mode, err := forms.ParseMode(ctx.Param("mode"))
	if err != nil {
		return notFound(err)
	}
	return s.respond(ctx, "auth."+string(mode), forms.NewAuthForm(mode).Validate(rec))
}

func (s *Service) profile(ctx handler.Context, rec Record) handler.Response {
	v := forms.NewProfileValidator(s.now, s.overlays...)
	return s.respond(ctx, "profile", v.Validate(rec))
}

// StepInfo describes one profile wizard step.
type StepInfo struct {
	Step     string   `json:"step"`
	Fields   []string `json:"fields"`
	Progress float64  `json:"progress"`
}

func (s *Service) steps(ctx handler.Context, _ Record) handler.Response {
	out := make([]StepInfo, 0, len(forms.Steps))
	for _, step := range forms.Steps {
		out = append(out, StepInfo{
			Step:     step.Name(),
			Fields:   forms.StepFields(step),
			Progress: forms.StepProgress(step),
		})
	}
	return handler.JSON(out, handler.WithJSONMeta(map[string]any{"total": len(out)}))
}

// StepResult is returned when a wizard step validates. Next is empty after
// the last step.
type StepResult struct {
	IsValid  bool    `json:"isValid"`
	Step     string  `json:"step"`
	Next     string  `json:"next,omitempty"`
	Progress float64 `json:"progress"`
}

func (s *Service) step(ctx handler.Context, rec Record) handler.Response {
	step, err := forms.ParseStep(ctx.Param("step"))
	if err != nil {
		return notFound(err)
	}

	w, err := forms.NewWizard(step, s.now, s.overlays...)
	if err != nil {
		return handler.JSONError(err)
	}

	res, err := w.Next(ctx, rec)
	switch {
	case errors.Is(err, forms.ErrLastStep):
		res = w.ValidateStep(rec)
	case err != nil:
		return handler.JSONError(err)
	}

	s.log.DebugContext(ctx, "wizard step checked",
		logger.Step(step.Name()),
		slog.String("current", w.Step().Name()),
	)
	if !res.IsValid {
		return s.respond(ctx, "profile.step."+step.Name(), res)
	}

	out := StepResult{IsValid: true, Step: step.Name(), Progress: forms.StepProgress(step)}
	if next := w.Step(); next != step {
		out.Next = next.Name()
	}
	return handler.JSON(out)
}

func (s *Service) lookup(ctx handler.Context, rec Record) handler.Response {
	kind := forms.LookupKind(ctx.Param("kind"))
	v, err := forms.NewLookupValidator(kind)
	if err != nil {
		return notFound(err)
	}
	return s.respond(ctx, "lookup."+string(kind), v.Validate(rec))
}

func (s *Service) document(ctx handler.Context, rec Record) handler.Response {
	if rec == nil {
		rec = Record{}
	}
	if fh, ok := rec["document"].(*multipart.FileHeader); ok {
		rec["document"] = validator.FileInfoFromHeader(fh)
	}
	return s.respond(ctx, "document", forms.NewDocumentValidator().Validate(rec))
}

func failedFields(res validator.Result) []string {
	return slices.Sorted(maps.Keys(res.Errors))
}
