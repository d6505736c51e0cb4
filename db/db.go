// Package db embeds the PostgreSQL migrations applied by pg.Migrate.
package db

import "embed"

// Migrations holds the goose migrations under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS
