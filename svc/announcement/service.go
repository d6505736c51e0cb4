package announcement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cruzhacks/portal/pkg/logger"
)

// Operations and outcomes passed to Recorder.
const (
	OpList   = "list"
	OpCreate = "create"
	OpDelete = "delete"

	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Recorder counts announcement operations. *metrics.Metrics implements it.
type Recorder interface {
	RecordAnnouncement(operation, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordAnnouncement(string, string) {}

type Service struct {
	repo     Repository
	log      *slog.Logger
	recorder Recorder
	now      func() time.Time
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) { s.recorder = r }
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:     repo,
		log:      slog.Default(),
		recorder: noopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("announcement"))
	return s
}

// Latest returns the LatestLimit newest announcements.
func (s *Service) Latest(ctx context.Context) ([]Announcement, error) {
	items, err := s.repo.Latest(ctx, LatestLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to list announcements", logger.Error(err))
		s.recorder.RecordAnnouncement(OpList, OutcomeError)
		return nil, err
	}
	s.recorder.RecordAnnouncement(OpList, OutcomeOK)
	return items, nil
}

// Create validates and publishes a new announcement. Invalid input is
// reported as validator.ValidationErrors.
func (s *Service) Create(ctx context.Context, title, message string) (*Announcement, error) {
	if err := Validate(title, message); err != nil {
		s.recorder.RecordAnnouncement(OpCreate, OutcomeInvalid)
		return nil, err
	}

	a := &Announcement{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.log.ErrorContext(ctx, "failed to create announcement", logger.Error(err))
		s.recorder.RecordAnnouncement(OpCreate, OutcomeError)
		return nil, err
	}

	s.log.InfoContext(ctx, "announcement created", slog.String("id", a.ID))
	s.recorder.RecordAnnouncement(OpCreate, OutcomeOK)
	return a, nil
}

// Delete removes an announcement. id must be a UUID.
func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		s.recorder.RecordAnnouncement(OpDelete, OutcomeInvalid)
		return ErrInvalidID
	}
	id = parsed.String()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.ErrorContext(ctx, "failed to delete announcement", slog.String("id", id), logger.Error(err))
		s.recorder.RecordAnnouncement(OpDelete, OutcomeError)
		return err
	}
	s.log.InfoContext(ctx, "announcement deleted", slog.String("id", id))
	s.recorder.RecordAnnouncement(OpDelete, OutcomeOK)
	return nil
}
