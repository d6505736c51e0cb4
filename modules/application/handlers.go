package application

import (
	"errors"
	"net/http"

	"github.com/cruzhacks/portal/handler"
	"github.com/cruzhacks/portal/pkg/binder"
	"github.com/cruzhacks/portal/pkg/jwt"
	"github.com/cruzhacks/portal/pkg/validator"
	"github.com/cruzhacks/portal/svc/applicant"
)

func (m *Module) submit(ctx handler.Context, form binder.RawForm) handler.Response {
	subject, ok := jwt.Subject(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}

	_, err := m.svc.Submit(ctx, subject, form.Values, form.File(applicant.ResumeField))
	if err == nil {
		return handler.Message(http.StatusCreated, MsgSubmitted)
	}

	var resumeErrs applicant.ResumeErrors
	switch {
	case errors.As(err, &resumeErrs):
		return handler.Message(http.StatusBadRequest, MsgResumeInvalid, resumeErrs.Messages()...)
	case validator.IsValidationError(err):
		return handler.Message(http.StatusBadRequest, MsgFormInvalid, validator.ExtractValidationErrors(err).Messages()...)
	case errors.Is(err, applicant.ErrResumeUpload):
		return handler.Message(http.StatusBadRequest, MsgUploadFailed)
	default:
		return handler.Message(http.StatusInternalServerError, MsgServerError)
	}
}

// statusResponse is the body of GET /checkApp.
type statusResponse struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}

func (m *Module) checkApp(ctx handler.Context, _ struct{}) handler.Response {
	subject, ok := jwt.Subject(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}

	status, err := m.svc.Status(ctx, subject)
	switch {
	case err == nil:
		return handler.JSON(statusResponse{
			Code:    http.StatusOK,
			Status:  string(status),
			Exists:  true,
			Message: MsgDocumentFound,
		})
	case errors.Is(err, applicant.ErrNotFound):
		return handler.JSON(statusResponse{
			Code:    http.StatusOK,
			Status:  StatusNoApplication,
			Message: MsgNoDocument,
		})
	default:
		return handler.JSON(statusResponse{
			Code:    http.StatusInternalServerError,
			Status:  StatusNoApplication,
			Message: MsgInternalError,
		}, handler.WithJSONStatus(http.StatusInternalServerError))
	}
}
