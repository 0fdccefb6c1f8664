package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/logger"
)

const filePerm = 0o600

// FileStorage keeps profiles in memory and rewrites the whole CSV file after
// every change. The file is re-read whenever another process replaced it, so
// the bot and the reporter can share one file.
type FileStorage struct {
	*InMemStorage
	path   string
	fileMu sync.Mutex
	seen   os.FileInfo
}

type fileConfig interface {
	FilePath() string
}

func NewFileStorage(config fileConfig) (*FileStorage, error) {
	s := &FileStorage{InMemStorage: NewInMemStorage(), path: config.FilePath()}

	if err := s.reload(); err != nil {
		return nil, err
	}
	if s.seen == nil {
		logger.Info("no user data file yet", zap.String("path", s.path))
	}
	return s, nil
}

func (s *FileStorage) GetProfile(ctx context.Context, id int64) (user.Profile, error) {
	if err := s.sync(); err != nil {
		return user.Profile{}, err
	}
	return s.InMemStorage.GetProfile(ctx, id)
}

func (s *FileStorage) ListUserIDs(ctx context.Context) ([]int64, error) {
	if err := s.sync(); err != nil {
		return nil, err
	}
	return s.InMemStorage.ListUserIDs(ctx)
}

func (s *FileStorage) SaveProfile(ctx context.Context, p user.Profile) error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	if err := s.reload(); err != nil {
		return err
	}
	if err := s.InMemStorage.SaveProfile(ctx, p); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStorage) AddBill(ctx context.Context, userID int64, b bill.Bill) error {
	if err := b.Validate(); err != nil {
		return errors.Wrap(err, "invalid bill")
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	if err := s.reload(); err != nil {
		return err
	}
	if err := s.InMemStorage.AddBill(ctx, userID, b); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStorage) sync() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	return s.reload()
}

// reload replaces the in-memory state when the file differs from the one
// last read or written. Caller holds fileMu.
func (s *FileStorage) reload() error {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "stat user data file")
	}
	if sameVersion(s.seen, info) {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return errors.Wrap(err, "read user data file")
	}
	profiles, err := readProfiles(bytes.NewReader(raw))
	if err != nil {
		return errors.Wrap(err, "parse user data file")
	}
	s.load(profiles)
	s.seen = info
	logger.Info("loaded user data", zap.String("path", s.path), zap.Int("users", len(profiles)))
	return nil
}

// flush writes the snapshot through a temp file and rename. Caller holds fileMu.
func (s *FileStorage) flush() error {
	var buf bytes.Buffer
	if err := writeProfiles(&buf, s.snapshot()); err != nil {
		return errors.Wrap(err, "encode user data")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), filePerm); err != nil {
		return errors.Wrap(err, "write user data")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replace user data")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return errors.Wrap(err, "stat user data file")
	}
	s.seen = info
	return nil
}

func sameVersion(prev, cur os.FileInfo) bool {
	if prev == nil {
		return false
	}
	return os.SameFile(prev, cur) && prev.Size() == cur.Size() && prev.ModTime().Equal(cur.ModTime())
}
