package storage

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	postgresDialect = "postgres"
	dsnTemplate     = "user=%s password=%s host=%s dbname=%s sslmode=disable"
)

type postgresConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

func NewPostgresStorage(config postgresConfig) (*SQLStorage, error) {
	dsn := fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database())

	db, err := sql.Open(postgresDialect, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}

	migrateDB, err := sql.Open(postgresDialect, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open migration database")
	}
	err = runMigrations(postgresDialect, migrateDB, func(db *sql.DB) (database.Driver, error) {
		return migratepg.WithInstance(db, &migratepg.Config{})
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newSQLStorage(db, sq.Dollar), nil
}
