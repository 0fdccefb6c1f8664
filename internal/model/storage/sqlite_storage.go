package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4/database"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/pkg/errors"
	// pure Go sqlite driver
	_ "modernc.org/sqlite"
)

const sqliteDialect = "sqlite"

type sqliteConfig interface {
	SQLitePath() string
}

func NewSQLiteStorage(config sqliteConfig) (*SQLStorage, error) {
	path := config.SQLitePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create database directory")
	}

	migrateDB, err := sql.Open(sqliteDialect, path)
	if err != nil {
		return nil, errors.Wrap(err, "open migration database")
	}
	err = runMigrations(sqliteDialect, migrateDB, func(db *sql.DB) (database.Driver, error) {
		return migratesqlite.WithInstance(db, &migratesqlite.Config{})
	})
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(sqliteDialect, path)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "enable foreign keys")
	}

	return newSQLStorage(db, sq.Question), nil
}
