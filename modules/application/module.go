package application

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cruzhacks/portal/handler"
	"github.com/cruzhacks/portal/pkg/binder"
	"github.com/cruzhacks/portal/pkg/jwt"
	"github.com/cruzhacks/portal/svc/applicant"
)

// Permissions checked against the token's permissions claim.
const (
	PermissionUpdate = "update:application"
	PermissionRead   = "read:application"
)

// Response messages.
const (
	MsgSubmitted        = "Successfully Updated Application"
	MsgFormInvalid      = "Form Validation Failed"
	MsgResumeInvalid    = "Resume Validation Failed"
	MsgUploadFailed     = "An Error Occurred Uploading Your Resume"
	MsgServerError      = "Server Error"
	MsgDocumentFound    = "Document Found"
	MsgNoDocument       = "No Document"
	MsgInternalError    = "Internal Server Error"
	StatusNoApplication = "No Document"
)

// ErrServerError is the response for undecodable bodies and storage failures.
var ErrServerError = handler.NewHTTPError(http.StatusInternalServerError, MsgServerError)

// Module serves the applicant endpoints.
type Module struct {
	svc  *applicant.Service
	auth *jwt.Service
	log  *slog.Logger
}

// Option configures a Module.
type Option func(*Module)

func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

// New creates the module. auth verifies bearer tokens.
func New(svc *applicant.Service, auth *jwt.Service, opts ...Option) *Module {
	m := &Module{svc: svc, auth: auth, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle returns the module router.
//
//	r.Mount("/application", application.New(svc, auth).Handle())
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(jwt.Middleware(m.auth))

	errorHandler := handler.NewErrorHandler(m.log, handler.WithFallback(ErrServerError))

	r.With(jwt.RequirePermission(PermissionUpdate)).Post("/submit", handler.Wrap(m.submit,
		handler.WithBinder[binder.RawForm](binder.Fields()),
		handler.WithErrorHandler[binder.RawForm](errorHandler),
	))
	r.With(jwt.RequirePermission(PermissionRead)).Get("/checkApp", handler.Wrap(m.checkApp,
		handler.WithErrorHandler[struct{}](errorHandler),
	))

	return r
}
