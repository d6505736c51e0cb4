// Package httpserver runs the portal's HTTP listener with graceful
// shutdown and provides liveness and readiness handlers.
//
// Run binds the listener before serving so a busy port fails fast with
// ErrStart. It stops when the context is canceled or on SIGINT/SIGTERM and
// gives in-flight requests the shutdown timeout to finish.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r.Get("/healthz", httpserver.Liveness())
//	r.Get("/readyz", httpserver.Readiness(log, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)}))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
