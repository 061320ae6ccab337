// Package httpserver runs an http.Server with graceful shutdown and serves
// health checks.
//
// Run blocks until its context is cancelled or the process receives SIGINT or
// SIGTERM. Shutdown cancels the base context of every in-flight request
// first, so event-stream handlers waiting on r.Context() return before the
// graceful deadline expires.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
