// Package logger builds the portal's *slog.Logger.
//
// New takes functional options selecting output format, level, static
// attributes and ContextExtractor callbacks. Extractors run on every Handle
// call, which is how the chi request id ends up on each record written while
// serving a request:
//
//	var cfg logger.Config // APP_ENV, LOG_LEVEL, LOG_FORMAT
//	_ = config.Load(&cfg)
//	log, err := logger.NewFromConfig(cfg, "portal",
//		logger.WithContextExtractors(logger.RequestIDExtractor),
//	)
//
//	log.InfoContext(ctx, "application stored",
//		logger.Subject(sub),
//		logger.Driver("postgres"),
//	)
//
// Error, Subject and RequestID return an empty attribute for zero values,
// which slog drops.
package logger
