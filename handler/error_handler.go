package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cruzhacks/portal/pkg/logger"
)

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

type errorHandlerConfig struct {
	fallback HTTPError
	mappings []errorMapping
}

type errorMapping struct {
	target  error
	httpErr HTTPError
}

// WithFallback sets the response for errors that match nothing else.
func WithFallback(e HTTPError) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.fallback = e
	}
}

// WithMapping responds with e whenever errors.Is(err, target).
// Mappings are checked in registration order.
func WithMapping(target error, e HTTPError) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		if target != nil {
			c.mappings = append(c.mappings, errorMapping{target: target, httpErr: e})
		}
	}
}

func (c *errorHandlerConfig) classify(err error) HTTPError {
	for _, m := range c.mappings {
		if errors.Is(err, m.target) {
			return m.httpErr
		}
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return c.fallback
}

// NewErrorHandler logs err and writes it as an Envelope. Client errors are
// logged at warn level, everything else at error level.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	cfg := &errorHandlerConfig{fallback: ErrInternalServerError}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		httpErr := cfg.classify(err)
		r := ctx.Request()

		level := slog.LevelError
		if httpErr.Code >= http.StatusBadRequest && httpErr.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := Message(httpErr.Code, httpErr.Message).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
