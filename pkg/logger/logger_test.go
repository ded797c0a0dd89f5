package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockhire/portal/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("info level hides debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Debug("quiet")

		assert.Empty(t, buf.String())
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))

		log.Warn("careful")

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "msg=careful")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("forms")))

		log.Info("hello")

		assert.Equal(t, "forms", decode(t, buf)["component"])
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production logs json at info", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("prod", "portal"))

		log.Debug("hidden")
		log.Info("shown")

		entry := decode(t, buf)
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "portal", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})

	t.Run("unknown env falls back to development", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("local", ""))

		log.Debug("verbose")

		assert.Contains(t, buf.String(), "msg=verbose")
		assert.Contains(t, buf.String(), "env=development")
		assert.NotContains(t, buf.String(), "service=")
	})

	t.Run("later options override", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithEnvironment(logger.EnvStaging, "portal"),
			logger.WithLevel(slog.LevelError),
		)

		log.Info("hidden")

		assert.Empty(t, buf.String())
	})
}

func TestContextExtraction(t *testing.T) {
	t.Parallel()

	t.Run("context value", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", ctxKey{}))

		log.InfoContext(context.WithValue(context.Background(), ctxKey{}, "acme"), "hello")

		assert.Equal(t, "acme", decode(t, buf)["tenant"])
	})

	t.Run("missing value adds nothing", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", ctxKey{}))

		log.InfoContext(context.Background(), "hello")

		assert.NotContains(t, decode(t, buf), "tenant")
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		extract := func(ctx context.Context) (slog.Attr, bool) {
			return logger.RequestID("req-1"), true
		}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, extract),
		).With(logger.Form("profile")).WithGroup("validation")

		log.InfoContext(context.Background(), "checked", slog.Int("errors", 2))

		entry := decode(t, buf)
		assert.Equal(t, "profile", entry["form"])
		group, ok := entry["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "req-1", group["request_id"])
		assert.InDelta(t, 2, group["errors"], 0)
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Fields().Equal(slog.Attr{}))
	assert.Equal(t, "fields", logger.Fields("email").Key)
	assert.Equal(t, int64(422), logger.Status(422).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "contact", logger.Step("contact").Value.String())

	g := logger.Group("req", logger.Status(200))
	assert.Equal(t, slog.KindGroup, g.Value.Kind())
}

func TestNoop(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { logger.Noop().Error("dropped") })
}
