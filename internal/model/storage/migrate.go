package storage

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations
var migrationsFS embed.FS

// runMigrations applies the embedded schema for dialect. db is closed by the
// migration driver, so callers hand in a dedicated connection.
func runMigrations(dialect string, db *sql.DB, withInstance func(*sql.DB) (database.Driver, error)) error {
	driver, err := withInstance(db)
	if err != nil {
		return errors.Wrapf(err, "create %s migration driver", dialect)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		return errors.Wrap(err, "create iofs source")
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}
