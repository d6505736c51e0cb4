package applicant

import "errors"

var (
	// ErrInvalidLimits is returned when a Limits table is inconsistent.
	ErrInvalidLimits = errors.New("invalid applicant limits")

	// ErrNotFound is returned when no application is stored for a subject.
	ErrNotFound = errors.New("application not found")

	// ErrResumeUpload is returned when the resume could not be stored.
	ErrResumeUpload = errors.New("resume upload failed")

	// ErrMissingSubject is returned when a submission has no authenticated subject.
	ErrMissingSubject = errors.New("missing subject")
)
