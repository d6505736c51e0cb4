package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// Connect
	ErrFailedToParseDBConfig    = errors.New("pg: invalid connection string")
	ErrFailedToOpenDBConnection = errors.New("pg: database unreachable")
	ErrUnavailable              = errors.New("pg: ping failed")

	// Migrate
	ErrFailedToApplyMigrations  = errors.New("pg: migrations failed")
	ErrMigrationsDirNotFound    = errors.New("pg: migrations directory not found")
	ErrMigrationPathNotProvided = errors.New("pg: neither migrations path nor FS set")
)

// IsNotFoundError reports whether a QueryRow scan found no rows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
