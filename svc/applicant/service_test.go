package applicant_test

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzhacks/portal/pkg/file"
	"github.com/cruzhacks/portal/pkg/validator"
	"github.com/cruzhacks/portal/svc/applicant"
)

type memoryRepo struct {
	mu   sync.Mutex
	apps map[string]applicant.Application
	err  error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{apps: map[string]applicant.Application{}}
}

func (r *memoryRepo) Upsert(_ context.Context, app *applicant.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	stored := *app
	if prev, ok := r.apps[app.Subject]; ok {
		stored.CreatedAt = prev.CreatedAt
		if stored.ResumeURL == "" {
			stored.ResumeURL = prev.ResumeURL
		}
	}
	r.apps[app.Subject] = stored
	return nil
}

func (r *memoryRepo) Get(_ context.Context, subject string) (*applicant.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	app, ok := r.apps[subject]
	if !ok {
		return nil, applicant.ErrNotFound
	}
	return &app, nil
}

type memoryStorage struct {
	mu      sync.Mutex
	files   map[string]int64
	saveErr error
	baseURL string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: map[string]int64{}, baseURL: "https://cdn.test/"}
}

func (s *memoryStorage) Save(_ context.Context, fh *multipart.FileHeader, path string) (*file.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.files[path] = fh.Size
	return &file.File{Filename: fh.Filename, Size: fh.Size, RelativePath: path}, nil
}

func (s *memoryStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[path]; !ok {
		return file.ErrFileNotFound
	}
	delete(s.files, path)
	return nil
}

func (s *memoryStorage) Exists(_ context.Context, path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok
}

func (s *memoryStorage) URL(path string) string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + path
}

func (s *memoryStorage) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *outcomeRecorder) RecordSubmission(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

type fixture struct {
	svc      *applicant.Service
	repo     *memoryRepo
	storage  *memoryStorage
	recorder *outcomeRecorder
}

func newFixture() *fixture {
	f := &fixture{
		repo:     newMemoryRepo(),
		storage:  newMemoryStorage(),
		recorder: &outcomeRecorder{},
	}
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	f.svc = applicant.NewService(
		applicant.NewValidator(applicant.DefaultLimits()),
		f.repo,
		f.storage,
		applicant.WithRecorder(f.recorder),
		applicant.WithClock(func() time.Time { return now }),
	)
	return f
}

func TestService_Submit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores pending application", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		app, err := f.svc.Submit(ctx, "auth0|1", validPayload(), nil)
		require.NoError(t, err)
		assert.Equal(t, applicant.StatusPending, app.Status)
		assert.Empty(t, app.ResumeURL)

		stored, err := f.repo.Get(ctx, "auth0|1")
		require.NoError(t, err)
		assert.Equal(t, "Jacob", stored.Record.FirstName)
		assert.Equal(t, []string{applicant.OutcomeAccepted}, f.recorder.outcomes)
	})

	t.Run("uploads resume", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		app, err := f.svc.Submit(ctx, "auth0|2", validPayload(), fileHeader(t, "cv.pdf", pdfContent))
		require.NoError(t, err)
		assert.Regexp(t, `^https://cdn\.test/resume/Jacobi_Jacob_[0-9a-f-]{36}\.pdf$`, app.ResumeURL)
		assert.Equal(t, 1, f.storage.count())
	})

	t.Run("form errors win over resume errors", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.svc.Submit(ctx, "auth0|3", with(validPayload(), "email", ""), fileHeader(t, "cv.txt", []byte("text")))
		require.True(t, validator.IsValidationError(err))
		assert.Equal(t, []string{applicant.MsgEmailInvalid}, validator.ExtractValidationErrors(err).Messages())
		assert.Zero(t, f.storage.count())
		assert.Equal(t, []string{applicant.OutcomeInvalid}, f.recorder.outcomes)

		_, err = f.repo.Get(ctx, "auth0|3")
		assert.ErrorIs(t, err, applicant.ErrNotFound)
	})

	t.Run("rejected resume", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.svc.Submit(ctx, "auth0|4", validPayload(), fileHeader(t, "cv.pdf", []byte("text")))
		var re applicant.ResumeErrors
		require.ErrorAs(t, err, &re)
		assert.False(t, validator.IsValidationError(err))
		assert.Equal(t, []string{applicant.OutcomeResumeInvalid}, f.recorder.outcomes)
	})

	t.Run("upload failure", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		f.storage.saveErr = file.ErrAccessDenied

		_, err := f.svc.Submit(ctx, "auth0|5", validPayload(), fileHeader(t, "cv.pdf", pdfContent))
		assert.ErrorIs(t, err, applicant.ErrResumeUpload)
		assert.ErrorIs(t, err, file.ErrAccessDenied)
		assert.Equal(t, []string{applicant.OutcomeUploadFailed}, f.recorder.outcomes)
	})

	t.Run("upload without url", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		f.storage.baseURL = ""

		_, err := f.svc.Submit(ctx, "auth0|6", validPayload(), fileHeader(t, "cv.pdf", pdfContent))
		assert.ErrorIs(t, err, applicant.ErrResumeUpload)
		assert.Zero(t, f.storage.count())
	})

	t.Run("storage failure removes uploaded resume", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		f.repo.err = errors.New("connection reset")

		_, err := f.svc.Submit(ctx, "auth0|7", validPayload(), fileHeader(t, "cv.pdf", pdfContent))
		assert.EqualError(t, err, "connection reset")
		assert.Zero(t, f.storage.count())
		assert.Equal(t, []string{applicant.OutcomeError}, f.recorder.outcomes)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		_, err := f.svc.Submit(ctx, "", validPayload(), nil)
		assert.ErrorIs(t, err, applicant.ErrMissingSubject)
	})

	t.Run("resubmission keeps resume", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		first, err := f.svc.Submit(ctx, "auth0|8", validPayload(), fileHeader(t, "cv.pdf", pdfContent))
		require.NoError(t, err)
		_, err = f.svc.Submit(ctx, "auth0|8", with(validPayload(), "major", "Mathematics"), nil)
		require.NoError(t, err)

		stored, err := f.repo.Get(ctx, "auth0|8")
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", stored.Record.Major)
		assert.Equal(t, first.ResumeURL, stored.ResumeURL)
	})
}

func TestService_NoStorage(t *testing.T) {
	t.Parallel()

	svc := applicant.NewService(applicant.NewValidator(applicant.DefaultLimits()), newMemoryRepo(), nil)
	_, err := svc.Submit(context.Background(), "auth0|1", validPayload(), fileHeader(t, "cv.pdf", pdfContent))
	assert.ErrorIs(t, err, applicant.ErrResumeUpload)

	_, err = svc.Submit(context.Background(), "auth0|1", validPayload(), nil)
	assert.NoError(t, err)
}

func TestService_Status(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.Status(ctx, "auth0|nobody")
	assert.ErrorIs(t, err, applicant.ErrNotFound)

	_, err = f.svc.Submit(ctx, "auth0|1", validPayload(), nil)
	require.NoError(t, err)

	status, err := f.svc.Status(ctx, "auth0|1")
	require.NoError(t, err)
	assert.Equal(t, applicant.StatusPending, status)

	f.repo.err = errors.New("boom")
	_, err = f.svc.Status(ctx, "auth0|1")
	assert.EqualError(t, err, "boom")
	assert.NotErrorIs(t, err, applicant.ErrNotFound)
}
