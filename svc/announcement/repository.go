package announcement

import "context"

// Repository persists announcements.
type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	// Latest returns up to limit announcements, newest first.
	Latest(ctx context.Context, limit int) ([]Announcement, error)
	// Delete removes the announcement with id. Deleting a missing id is not
	// an error.
	Delete(ctx context.Context, id string) error
}
