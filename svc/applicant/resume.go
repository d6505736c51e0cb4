package applicant

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/cruzhacks/portal/pkg/file"
	"github.com/cruzhacks/portal/pkg/validator"
)

const (
	// MaxResumeSize is the largest accepted resume, in bytes.
	MaxResumeSize int64 = 5 << 20

	// ResumeField is the multipart field carrying the resume.
	ResumeField = "file"

	// ResumeDir is the storage directory for uploaded resumes.
	ResumeDir = "resume"

	MsgResumeNotPDF   = "Resume must be a PDF"
	MsgResumeTooLarge = "Resume is Too Large"
)

// ResumeErrors reports a rejected resume. It is kept apart from form
// validation failures so callers can answer differently.
type ResumeErrors struct {
	validator.ValidationErrors
}

func (e ResumeErrors) Error() string {
	return "resume: " + e.ValidationErrors.Error()
}

// ValidateResume checks an optional resume upload. A nil header passes.
func ValidateResume(fh *multipart.FileHeader) error {
	if fh == nil {
		return nil
	}

	err := validator.Apply(
		validator.Custom(ResumeField, MsgResumeNotPDF, func() bool { return file.IsPDF(fh) }),
		validator.Custom(ResumeField, MsgResumeTooLarge, func() bool {
			return file.CheckSize(fh, MaxResumeSize) == nil
		}),
	)
	if err != nil {
		return ResumeErrors{ValidationErrors: validator.ExtractValidationErrors(err)}
	}
	return nil
}

// ResumeFileName builds the stored object name for rec's resume:
// <lname>_<fname>_<uuid>.pdf. Separators and dots are dropped and spaces
// become dashes.
func ResumeFileName(rec *Record) string {
	name := fmt.Sprintf("%s_%s_%s.pdf", nameComponent(rec.LastName), nameComponent(rec.FirstName), uuid.NewString())
	return file.SanitizeFilename(name)
}

// ResumePath is where ResumeFileName is stored.
func ResumePath(rec *Record) string {
	return ResumeDir + "/" + ResumeFileName(rec)
}

var nameReplacer = strings.NewReplacer("/", "", "\\", "", ".", "", " ", "-", "\x00", "")

func nameComponent(s string) string {
	s = nameReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return "applicant"
	}
	return s
}
