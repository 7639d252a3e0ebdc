package postgres

import (
	"context"
	"database/sql"

	"delishub/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// Migrate applies every pending embedded migration to the database.
func Migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return errors.Wrap(err, "failed to create migration provider")
	}

	if _, err := provider.Up(ctx); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
