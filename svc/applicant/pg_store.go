package applicant

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cruzhacks/portal/pkg/pg"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGStore is a Repository backed by the applications table.
type PGStore struct {
	db DBTX
}

func NewPGStore(db DBTX) *PGStore {
	return &PGStore{db: db}
}

const upsertApplication = `
INSERT INTO applications (
    subject, email, first_name, last_name, phone, age, pronouns, sexuality,
    race, school, college, event_location, major, current_standing, country,
    status, resume_url, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
ON CONFLICT (subject) DO UPDATE SET
    email = EXCLUDED.email,
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    phone = EXCLUDED.phone,
    age = EXCLUDED.age,
    pronouns = EXCLUDED.pronouns,
    sexuality = EXCLUDED.sexuality,
    race = EXCLUDED.race,
    school = EXCLUDED.school,
    college = EXCLUDED.college,
    event_location = EXCLUDED.event_location,
    major = EXCLUDED.major,
    current_standing = EXCLUDED.current_standing,
    country = EXCLUDED.country,
    status = EXCLUDED.status,
    resume_url = COALESCE(NULLIF(EXCLUDED.resume_url, ''), applications.resume_url),
    updated_at = EXCLUDED.updated_at`

func (s *PGStore) Upsert(ctx context.Context, app *Application) error {
	r := app.Record
	_, err := s.db.Exec(ctx, upsertApplication,
		app.Subject, r.Email, r.FirstName, r.LastName, r.Phone, r.Age,
		nonNil(r.Pronouns), nonNil(r.Sexuality),
		r.Race, r.School, r.College, r.EventLocation, r.Major, r.CurrentStanding, r.Country,
		string(app.Status), app.ResumeURL, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert application: %w", err)
	}
	return nil
}

const selectApplication = `
SELECT subject, email, first_name, last_name, phone, age, pronouns, sexuality,
       race, school, college, event_location, major, current_standing, country,
       status, resume_url, created_at, updated_at
FROM applications
WHERE subject = $1`

func (s *PGStore) Get(ctx context.Context, subject string) (*Application, error) {
	var (
		app    Application
		r      = &app.Record
		status string
	)
	err := s.db.QueryRow(ctx, selectApplication, subject).Scan(
		&app.Subject, &r.Email, &r.FirstName, &r.LastName, &r.Phone, &r.Age,
		&r.Pronouns, &r.Sexuality,
		&r.Race, &r.School, &r.College, &r.EventLocation, &r.Major, &r.CurrentStanding, &r.Country,
		&status, &app.ResumeURL, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	app.Status = Status(status)
	return &app, nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ Repository = (*PGStore)(nil)
