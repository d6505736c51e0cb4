package application_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cruzhacks/portal/handler"
	"github.com/cruzhacks/portal/modules/application"
	"github.com/cruzhacks/portal/pkg/file"
	"github.com/cruzhacks/portal/pkg/jwt"
	"github.com/cruzhacks/portal/svc/applicant"
)

const signingKey = "test-signing-key-test-signing-key"

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Upsert(ctx context.Context, app *applicant.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *mockRepo) Get(ctx context.Context, subject string) (*applicant.Application, error) {
	args := m.Called(ctx, subject)
	app, _ := args.Get(0).(*applicant.Application)
	return app, args.Error(1)
}

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func formValues() url.Values {
	return url.Values{
		"email":           {"user@example.com"},
		"fname":           {"Jacob"},
		"lname":           {"Jacobi"},
		"phone":           {"925-111-1111"},
		"age":             {"24"},
		"pronounCount":    {"1"},
		"pronouns[0]":     {"he/him/his"},
		"sexualityCount":  {"1"},
		"sexuality[0]":    {"bisexual"},
		"race":            {"Turkey man"},
		"school":          {"UOP"},
		"eventLocation":   {"On-campus at UC Santa Cruz"},
		"major":           {"Computer Science"},
		"currentStanding": {"Junior"},
		"country":         {"USA"},
	}
}

type fixture struct {
	router http.Handler
	repo   *mockRepo
	auth   *jwt.Service
	dir    string
}

func newFixture(t *testing.T, withStorage bool) *fixture {
	t.Helper()

	auth, err := jwt.New([]byte(signingKey))
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &mockRepo{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	f := &fixture{repo: repo, auth: auth}

	var storage file.Storage
	if withStorage {
		f.dir = t.TempDir()
		storage, err = file.NewLocalStorage(f.dir, "/files/")
		require.NoError(t, err)
	}

	svc := applicant.NewService(
		applicant.NewValidator(applicant.DefaultLimits()),
		repo,
		storage,
		applicant.WithLogger(log),
	)
	f.router = application.New(svc, auth, application.WithLogger(log)).Handle()
	return f
}

func (f *fixture) token(t *testing.T, subject string, perms ...string) string {
	t.Helper()
	token, err := f.auth.Generate(jwt.Claims{
		StandardClaims: jwt.StandardClaims{Subject: subject},
		Permissions:    perms,
	})
	require.NoError(t, err)
	return token
}

func (f *fixture) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, values url.Values, filename string, content []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for k, vs := range values {
		require.NoError(t, w.WriteField(k, vs[0]))
	}
	if filename != "" {
		part, err := w.CreateFormFile(applicant.ResumeField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) handler.Envelope {
	t.Helper()
	var env handler.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSubmit_Auth(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	rec := f.do(formRequest(formValues()), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(formRequest(formValues()), f.token(t, "auth0|1", application.PermissionRead))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmit_Accepted(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	f.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(app *applicant.Application) bool {
		return app.Subject == "auth0|1" &&
			app.Status == applicant.StatusPending &&
			app.Record.Email == "user@example.com" &&
			app.ResumeURL == ""
	})).Return(nil).Once()

	rec := f.do(formRequest(formValues()), f.token(t, "auth0|1", application.PermissionUpdate))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, handler.Envelope{Code: http.StatusCreated, Message: application.MsgSubmitted}, envelope(t, rec))
}

func TestSubmit_FormInvalid(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	values := formValues()
	values.Set("email", "not-an-email")
	values.Del("race")

	rec := f.do(formRequest(values), f.token(t, "auth0|1", application.PermissionUpdate))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := envelope(t, rec)
	assert.Equal(t, application.MsgFormInvalid, env.Message)
	assert.Equal(t, []string{applicant.MsgEmailInvalid, applicant.MsgRaceEmpty}, env.Errors)
	f.repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSubmit_UndecodableBody(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	rec := f.do(req, f.token(t, "auth0|1", application.PermissionUpdate))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, handler.Envelope{Code: http.StatusInternalServerError, Message: application.MsgServerError}, envelope(t, rec))
}

func TestSubmit_StorageFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	f.repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	rec := f.do(formRequest(formValues()), f.token(t, "auth0|1", application.PermissionUpdate))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, application.MsgServerError, envelope(t, rec).Message)
}

func TestSubmit_Resume(t *testing.T) {
	t.Parallel()

	t.Run("stored", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, true)

		var stored *applicant.Application
		f.repo.On("Upsert", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*applicant.Application) }).
			Return(nil).Once()

		req := multipartRequest(t, formValues(), "cv.pdf", pdfContent)
		rec := f.do(req, f.token(t, "auth0|1", application.PermissionUpdate))

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, stored)
		assert.True(t, strings.HasPrefix(stored.ResumeURL, "/files/resume/Jacobi_Jacob_"))
		assert.True(t, strings.HasSuffix(stored.ResumeURL, ".pdf"))

		saved, err := os.ReadFile(filepath.Join(f.dir, strings.TrimPrefix(stored.ResumeURL, "/files/")))
		require.NoError(t, err)
		assert.Equal(t, pdfContent, saved)
	})

	t.Run("not a pdf", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, true)

		req := multipartRequest(t, formValues(), "cv.txt", []byte("plain text resume"))
		rec := f.do(req, f.token(t, "auth0|1", application.PermissionUpdate))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, handler.Envelope{
			Code:    http.StatusBadRequest,
			Message: application.MsgResumeInvalid,
			Errors:  []string{applicant.MsgResumeNotPDF},
		}, envelope(t, rec))
	})

	t.Run("form checked first", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, true)

		values := formValues()
		values.Set("age", "5")
		req := multipartRequest(t, values, "cv.txt", []byte("plain text resume"))
		rec := f.do(req, f.token(t, "auth0|1", application.PermissionUpdate))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := envelope(t, rec)
		assert.Equal(t, application.MsgFormInvalid, env.Message)
		assert.Equal(t, []string{applicant.MsgAgeTooLow}, env.Errors)
	})

	t.Run("upload unavailable", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)

		req := multipartRequest(t, formValues(), "cv.pdf", pdfContent)
		rec := f.do(req, f.token(t, "auth0|1", application.PermissionUpdate))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, handler.Envelope{Code: http.StatusBadRequest, Message: application.MsgUploadFailed}, envelope(t, rec))
	})
}

func TestCheckApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*mockRepo)
		code  int
		body  string
	}{
		{
			name: "found",
			setup: func(r *mockRepo) {
				r.On("Get", mock.Anything, "auth0|1").
					Return(&applicant.Application{Subject: "auth0|1", Status: applicant.StatusPending}, nil).Once()
			},
			code: http.StatusOK,
			body: `{"code":200,"status":"pending","exists":true,"message":"Document Found"}`,
		},
		{
			name: "absent",
			setup: func(r *mockRepo) {
				r.On("Get", mock.Anything, "auth0|1").Return(nil, applicant.ErrNotFound).Once()
			},
			code: http.StatusOK,
			body: `{"code":200,"status":"No Document","exists":false,"message":"No Document"}`,
		},
		{
			name: "storage error",
			setup: func(r *mockRepo) {
				r.On("Get", mock.Anything, "auth0|1").Return(nil, errors.New("timeout")).Once()
			},
			code: http.StatusInternalServerError,
			body: `{"code":500,"status":"No Document","exists":false,"message":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, false)
			tt.setup(f.repo)

			req := httptest.NewRequest(http.MethodGet, "/checkApp", nil)
			rec := f.do(req, f.token(t, "auth0|1", application.PermissionRead))

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestCheckApp_RequiresReadPermission(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodGet, "/checkApp", nil)
	rec := f.do(req, f.token(t, "auth0|1", application.PermissionUpdate))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
