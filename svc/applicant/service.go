package applicant

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/cruzhacks/portal/pkg/file"
	"github.com/cruzhacks/portal/pkg/logger"
	"github.com/cruzhacks/portal/pkg/validator"
)

// Submission outcomes passed to Recorder.
const (
	OutcomeAccepted      = "accepted"
	OutcomeInvalid       = "invalid"
	OutcomeResumeInvalid = "resume_invalid"
	OutcomeUploadFailed  = "upload_failed"
	OutcomeError         = "error"
)

// Recorder receives one call per submission. *metrics.Metrics implements it.
type Recorder interface {
	RecordSubmission(outcome string, d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordSubmission(string, time.Duration) {}

// Service validates and stores applications.
type Service struct {
	validator *Validator
	repo      Repository
	storage   file.Storage
	log       *slog.Logger
	recorder  Recorder
	now       func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) { s.recorder = r }
}

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service. storage may be nil when resumes are not
// accepted; a submission carrying one then fails with ErrResumeUpload.
func NewService(v *Validator, repo Repository, storage file.Storage, opts ...ServiceOption) *Service {
	s := &Service{
		validator: v,
		repo:      repo,
		storage:   storage,
		log:       slog.Default(),
		recorder:  noopRecorder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("applicant"))
	return s
}

// Submit validates raw and the optional resume, uploads the resume and
// stores the application for subject with status pending.
//
// Errors, in the order they are checked:
//   - validator.ValidationErrors when the form is rejected
//   - ResumeErrors when the resume is rejected
//   - ErrResumeUpload when the resume could not be stored
//   - any Repository error
func (s *Service) Submit(ctx context.Context, subject string, raw RawFieldMap, resume *multipart.FileHeader) (*Application, error) {
	start := s.now()
	app, outcome, err := s.submit(ctx, subject, raw, resume)
	s.recorder.RecordSubmission(outcome, s.now().Sub(start))
	return app, err
}

func (s *Service) submit(ctx context.Context, subject string, raw RawFieldMap, resume *multipart.FileHeader) (*Application, string, error) {
	if subject == "" {
		return nil, OutcomeError, ErrMissingSubject
	}

	rec, err := s.validator.Validate(raw)
	if err != nil {
		s.log.InfoContext(ctx, "application rejected",
			logger.Subject(subject),
			logger.Reasons(validator.ExtractValidationErrors(err).Messages()),
		)
		return nil, OutcomeInvalid, err
	}

	if err := ValidateResume(resume); err != nil {
		var re ResumeErrors
		if errors.As(err, &re) {
			s.log.InfoContext(ctx, "resume rejected",
				logger.Subject(subject),
				logger.Reasons(re.Messages()),
			)
		}
		return nil, OutcomeResumeInvalid, err
	}

	now := s.now().UTC()
	app := &Application{
		Subject:   subject,
		Record:    *rec,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var uploaded string
	if resume != nil {
		uploaded, app.ResumeURL, err = s.upload(ctx, rec, resume)
		if err != nil {
			s.log.ErrorContext(ctx, "resume upload failed", logger.Subject(subject), logger.Error(err))
			return nil, OutcomeUploadFailed, err
		}
	}

	if err := s.repo.Upsert(ctx, app); err != nil {
		s.log.ErrorContext(ctx, "failed to store application", logger.Subject(subject), logger.Error(err))
		if uploaded != "" {
			s.discard(ctx, uploaded)
		}
		return nil, OutcomeError, err
	}

	s.log.InfoContext(ctx, "application stored", logger.Subject(subject), slog.Bool("resume", uploaded != ""))
	return app, OutcomeAccepted, nil
}

// upload stores the resume and returns its storage path and public URL.
func (s *Service) upload(ctx context.Context, rec *Record, resume *multipart.FileHeader) (string, string, error) {
	if s.storage == nil {
		return "", "", ErrResumeUpload
	}

	saved, err := s.storage.Save(ctx, resume, ResumePath(rec))
	if err != nil {
		return "", "", errors.Join(ErrResumeUpload, err)
	}

	url := s.storage.URL(saved.RelativePath)
	if url == "" {
		s.discard(ctx, saved.RelativePath)
		return "", "", ErrResumeUpload
	}
	return saved.RelativePath, url, nil
}

func (s *Service) discard(ctx context.Context, path string) {
	if err := s.storage.Delete(context.WithoutCancel(ctx), path); err != nil {
		s.log.WarnContext(ctx, "failed to remove orphaned resume", slog.String("path", path), logger.Error(err))
	}
}

// Status returns the review status stored for subject, or ErrNotFound.
func (s *Service) Status(ctx context.Context, subject string) (Status, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	app, err := s.repo.Get(ctx, subject)
	if err != nil {
		return "", err
	}
	if app.Status == "" {
		return "", ErrNotFound
	}
	return app.Status, nil
}

// Validator returns the validator used by Submit.
func (s *Service) Validator() *Validator {
	return s.validator
}
