package db

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies every migrations/*.sql file that is not yet recorded in
// schema_migrations, in file name order, each in its own transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return errs.Wrap(err, "failed to create schema_migrations")
	}

	names, err := migrationNames()
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := applyMigration(ctx, pool, name); err != nil {
			return err
		}
		logger.Debug("migration checked", "file", name)
	}
	return nil
}

func migrationNames() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, errs.Wrap(err, "failed to list migrations")
	}
	sort.Strings(names)
	return names, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, name string) error {
	body, err := migrationFS.ReadFile(name)
	if err != nil {
		return errs.Wrapf(err, "failed to read %s", name)
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		// Serializes concurrent starters of the same binary.
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('schema_migrations'))`); err != nil {
			return errs.Wrap(err, "failed to lock migrations")
		}
		var applied bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, name,
		).Scan(&applied); err != nil {
			return errs.Wrapf(err, "failed to check %s", name)
		}
		if applied {
			return nil
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return errs.Wrapf(err, "failed to apply %s", name)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			return errs.Wrapf(err, "failed to record %s", name)
		}
		return nil
	})
}
