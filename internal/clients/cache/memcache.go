package cache

import (
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/logger"
)

const (
	defaultBase = 10
	// summaries are keyed by day, so nothing needs to live longer than one
	reportTTL = int32(24 * time.Hour / time.Second)
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, errors.Wrap(mc.Ping(), "ping memcached")
}

func formatKey(userID int64, option string) string {
	return strconv.FormatInt(userID, defaultBase) + ":" + option
}

func (mc *MemcacheClient) CacheReport(userID int64, option string, report string) error {
	logger.Debug("cache report", zap.Int64("userID", userID), zap.String("option", option))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(userID, option),
		Value:      []byte(report),
		Expiration: reportTTL,
	})
}

// GetReport returns ErrMiss when nothing is cached.
func (mc *MemcacheClient) GetReport(userID int64, option string) (string, error) {
	logger.Debug("get report from cache", zap.Int64("userID", userID), zap.String("option", option))
	item, err := mc.client.Get(formatKey(userID, option))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateCache(userID int64, options []string) error {
	logger.Debug("invalidate cache", zap.Int64("userID", userID))

	for _, opt := range options {
		err := mc.client.Delete(formatKey(userID, opt))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
