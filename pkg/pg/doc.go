// Package pg bootstraps PostgreSQL access with pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config, retrying while the database
// comes up. Migrate applies goose migrations, either from a directory or
// from an embedded FS:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log, pg.WithMigrationsFS(db.Migrations)); err != nil {
//		return err
//	}
//
// Healthcheck wraps Ping for readiness endpoints. IsNotFoundError lets
// stores map pgx.ErrNoRows to their own not-found errors.
package pg
