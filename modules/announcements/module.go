package announcements

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cruzhacks/portal/handler"
	"github.com/cruzhacks/portal/pkg/binder"
	"github.com/cruzhacks/portal/pkg/jwt"
	"github.com/cruzhacks/portal/pkg/logger"
	"github.com/cruzhacks/portal/svc/announcement"
)

const (
	PermissionUpdate = "update:announcements"
	PermissionDelete = "delete:announcements"
)

const (
	MsgListed        = "Request success, announcements retrieved"
	MsgCreated       = "Item successfully added."
	MsgDeleted       = "Announcement successfully removed!"
	MsgInvalidID     = "Invalid announcement id"
	MsgBadRequest    = "Invalid request body"
	MsgUnauthorized  = "Unauthorized"
	MsgInternalError = "Internal Server Error"
)

// Config is loaded from the environment with pkg/config.
type Config struct {
	APIKey string `env:"API_KEY,required"`
}

// Module serves the announcement endpoints.
type Module struct {
	svc    *announcement.Service
	auth   *jwt.Service
	apiKey string
	log    *slog.Logger
}

type Option func(*Module)

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

func New(svc *announcement.Service, auth *jwt.Service, cfg Config, opts ...Option) *Module {
	m := &Module{svc: svc, auth: auth, apiKey: cfg.APIKey, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle returns the module router.
//
//	r.Mount("/announcements", announcements.New(svc, auth, cfg).Handle())
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()

	r.With(RequireAPIKey(m.apiKey)).Get("/", handler.Wrap(m.list,
		handler.WithErrorHandler[struct{}](m.handleError),
	))

	r.Group(func(r chi.Router) {
		r.Use(jwt.Middleware(m.auth))

		r.With(jwt.RequirePermission(PermissionUpdate)).Post("/", handler.Wrap(m.create,
			handler.WithBinder[createRequest](binder.JSON()),
			handler.WithErrorHandler[createRequest](m.handleError),
		))
		r.With(jwt.RequirePermission(PermissionDelete)).Delete("/{id}", handler.Wrap(m.delete,
			handler.WithErrorHandler[struct{}](m.handleError),
		))
	})

	return r
}

// handleError answers binding failures with 400 and anything else with 500.
func (m *Module) handleError(ctx handler.Context, err error) {
	r := ctx.Request()

	code, msg := http.StatusInternalServerError, MsgInternalError
	if errors.Is(err, binder.ErrFailedToParseJSON) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) {
		code, msg = http.StatusBadRequest, MsgBadRequest
	}

	level := slog.LevelError
	if code < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	m.log.LogAttrs(r.Context(), level, "announcement request failed",
		logger.Error(err),
		slog.Int("status_code", code),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("announcements"),
	)

	if renderErr := reply(code, msg).Render(ctx.ResponseWriter(), r); renderErr != nil {
		m.log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
	}
}
