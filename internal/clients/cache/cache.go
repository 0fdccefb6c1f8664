package cache

import "github.com/pkg/errors"

var ErrMiss = errors.New("cache miss")

// Cache stores rendered bill summaries per user and option.
type Cache interface {
	CacheReport(userID int64, option string, report string) error
	GetReport(userID int64, option string) (string, error)
	InvalidateCache(userID int64, options []string) error
}

var (
	_ Cache = (*MemcacheClient)(nil)
	_ Cache = Nop{}
)

type selectorConfig interface {
	config
	Enabled() bool
}

// New connects to memcached, or returns Nop when no hosts are configured.
func New(config selectorConfig) (Cache, error) {
	if !config.Enabled() {
		return Nop{}, nil
	}
	mc, err := NewMemcache(config)
	if err != nil {
		return nil, err
	}
	return mc, nil
}

// Nop is used when no memcached hosts are configured.
type Nop struct{}

func (Nop) CacheReport(int64, string, string) error {
	return nil
}

func (Nop) GetReport(int64, string) (string, error) {
	return "", ErrMiss
}

func (Nop) InvalidateCache(int64, []string) error {
	return nil
}
