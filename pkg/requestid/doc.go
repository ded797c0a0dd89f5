// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware accepts an incoming X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-]; anything else is replaced with a fresh UUID.
// The ID is echoed in the response header, stored in the request context
// and, through LoggerExtractor, added to log records:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
