package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blockhire/portal/modules/validation"
	"github.com/blockhire/portal/pkg/config"
	"github.com/blockhire/portal/pkg/httpserver"
	"github.com/blockhire/portal/pkg/logger"
	"github.com/blockhire/portal/pkg/requestid"
	"github.com/blockhire/portal/pkg/validator"
)

// Config is the portal's environment configuration.
type Config struct {
	Env         string     `env:"APP_ENV" envDefault:"development"`
	ServiceName string     `env:"SERVICE_NAME" envDefault:"blockhire-portal"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	RulesFile   string     `env:"RULES_FILE"`
	HTTP        httpserver.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("portal stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	overlays, rulesReady := loadProfileRules(cfg.RulesFile, log)

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestid.Middleware, middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, rulesReady))
	r.Mount("/forms", validation.NewService(
		validation.WithLogger(log),
		validation.WithProfileRules(overlays...),
	).Handle())

	return httpserver.New(cfg.HTTP, log).Run(ctx, r)
}

var errRulesNotLoaded = errors.New("profile rule file configured but not loaded")

// loadProfileRules loads the optional profile rule file. A file that fails
// to load is logged and left out, and the returned readiness check reports
// the failure until the process is restarted.
func loadProfileRules(file string, log *slog.Logger) ([]validator.RuleSet, func(context.Context) error) {
	if file == "" {
		return nil, func(context.Context) error { return nil }
	}

	rs, err := validation.LoadRuleFile(file)
	if err != nil {
		log.Error("profile rules not loaded", slog.String("file", file), logger.Error(err))
		loadErr := errors.Join(errRulesNotLoaded, err)
		return nil, func(context.Context) error { return loadErr }
	}

	log.Info("profile rules loaded", slog.String("file", file), slog.Int("fields", len(rs.Rules)))
	return []validator.RuleSet{rs}, func(context.Context) error { return nil }
}
