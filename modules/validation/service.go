package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blockhire/portal/handler"
	"github.com/blockhire/portal/pkg/logger"
	"github.com/blockhire/portal/pkg/validator"
)

// Service serves the portal's form validation endpoints.
type Service struct {
	log          *slog.Logger
	now          func() time.Time
	overlays     []validator.RuleSet
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the clock used for date of birth checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithProfileRules layers rule sets over the built-in profile rules.
func WithProfileRules(sets ...validator.RuleSet) Option {
	return func(s *Service) {
		s.overlays = append(s.overlays, sets...)
	}
}

// NewService creates the validation service.
func NewService(opts ...Option) *Service {
	s := &Service{
		log: logger.Noop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("validation"))
	s.errorHandler = handler.NewErrorHandler(s.log)
	return s
}

// Handle returns the router for the service.
//
//	r.Mount("/forms", validation.NewService(validation.WithLogger(log)).Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.NotFound(s.routeError(handler.ErrNotFound))
	r.MethodNotAllowed(s.routeError(handler.ErrMethodNotAllowed))
	r.Post("/auth/{mode}", s.wrap(s.auth))
	r.Post("/profile", s.wrap(s.profile))
	r.Get("/profile/steps", s.wrap(s.steps))
	r.Post("/profile/steps/{step}", s.wrap(s.step))
	r.Post("/lookup/{kind}", s.wrap(s.lookup))
	r.Post("/document", s.wrap(s.document))
	return r
}

// LoadRuleFile reads a YAML rule file with the default named checks.
func LoadRuleFile(path string) (validator.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return validator.RuleSet{}, fmt.Errorf("open rule file: %w", err)
	}
	defer f.Close()

	rs, err := validator.LoadRules(f, nil)
	if err != nil {
		return validator.RuleSet{}, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// respond logs the outcome of a validation pass and renders it.
func (s *Service) respond(ctx handler.Context, form string, res validator.Result) handler.Response {
	s.log.DebugContext(ctx, "form validated",
		logger.Form(form),
		logger.Group("result",
			slog.Bool("valid", res.IsValid),
			logger.Fields(failedFields(res)...),
		),
	)
	return handler.Validation(res)
}

func notFound(err error) handler.Response {
	return handler.JSONError(errors.Join(handler.ErrNotFound, err))
}
