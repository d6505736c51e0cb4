package applicant

import "context"

// Repository persists applications keyed by subject.
type Repository interface {
	// Upsert stores app, replacing any previous submission by the same
	// subject. CreatedAt of an existing row is kept, and so is its resume
	// URL when app.ResumeURL is empty.
	Upsert(ctx context.Context, app *Application) error
	// Get returns ErrNotFound when the subject has not applied.
	Get(ctx context.Context, subject string) (*Application, error)
}
