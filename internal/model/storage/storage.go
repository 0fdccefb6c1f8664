package storage

import (
	"context"

	"github.com/pkg/errors"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrNotFound is returned when a user has no stored profile.
var ErrNotFound = errors.New("profile not found")

// ErrProcessLocal is returned by NewShared for drivers that keep data in one
// process.
var ErrProcessLocal = errors.New("storage is not shared between processes")

type Store interface {
	GetProfile(ctx context.Context, id int64) (user.Profile, error)
	SaveProfile(ctx context.Context, p user.Profile) error
	AddBill(ctx context.Context, userID int64, b bill.Bill) error
	ListUserIDs(ctx context.Context) ([]int64, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*InMemStorage)(nil)
	_ Store = (*FileStorage)(nil)
	_ Store = (*SQLStorage)(nil)
)

type config interface {
	Driver() string
	fileConfig
	sqliteConfig
}

// New opens the store selected by the configured driver.
func New(config config, pg postgresConfig) (Store, error) {
	switch config.Driver() {
	case DriverMemory:
		return NewInMemStorage(), nil
	case DriverFile:
		s, err := NewFileStorage(config)
		if err != nil {
			return nil, errors.Wrap(err, "open file storage")
		}
		return s, nil
	case DriverPostgres:
		s, err := NewPostgresStorage(pg)
		if err != nil {
			return nil, errors.Wrap(err, "open postgres storage")
		}
		return s, nil
	case DriverSQLite:
		s, err := NewSQLiteStorage(config)
		if err != nil {
			return nil, errors.Wrap(err, "open sqlite storage")
		}
		return s, nil
	}
	return nil, errors.Errorf("unknown storage driver %q", config.Driver())
}

// NewShared opens a store another process writes to, such as the bot's store
// read by the reporter.
func NewShared(config config, pg postgresConfig) (Store, error) {
	if config.Driver() == DriverMemory {
		return nil, errors.Wrapf(ErrProcessLocal, "driver %q", config.Driver())
	}
	return New(config, pg)
}
