// Package logger builds log/slog loggers for the portal.
//
// New returns a JSON logger at info level unless told otherwise:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "blockhire-portal"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Context extractors run on every record, so request-scoped values such as
// the request ID appear whenever the *Context logging methods are used.
//
// The attribute helpers (Form, Step, Fields and friends) keep key names
// consistent across packages. Helpers given a zero value return an empty
// slog.Attr, which handlers skip.
package logger
