// Package httpserver runs the namegen HTTP service: a net/http server with
// timeouts, graceful shutdown on context cancellation or SIGINT/SIGTERM, and
// a health check handler.
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, ready))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen failures in ErrStart and Shutdown wraps shutdown failures
// in ErrShutdown.
package httpserver
