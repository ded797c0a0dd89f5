// Package httpserver runs the portal's HTTP listener with graceful shutdown.
//
//	srv := httpserver.New(cfg.HTTP, log)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns once ctx is cancelled and in-flight requests have finished or
// ShutdownTimeout has passed. Errors wrap ErrStart or ErrShutdown.
package httpserver
