package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
telegram:
  token: file-token
app:
  lookahead-days: 10
  timezone: Europe/Moscow
  day-policy: reject
storage:
  driver: sqlite
  sqlite-path: /tmp/bills.db
postgres:
  host: localhost
  db: bills
  username: bot
  password: secret
memcached:
  hosts: ["localhost:11211"]
kafka:
  brokers: ["localhost:9092"]
`

func Test_OnParse_ShouldReadSections(t *testing.T) {
	t.Setenv(telegramTokenEnvKey, "")

	cfg, err := Parse([]byte(sampleYAML))

	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Telegram().Token())
	assert.Equal(t, 10, cfg.App().LookaheadDays())
	assert.Equal(t, "reject", cfg.App().DayPolicy())
	assert.Equal(t, "Europe/Moscow", cfg.App().Location().String())
	assert.Equal(t, DriverSQLite, cfg.Storage().Driver())
	assert.Equal(t, "/tmp/bills.db", cfg.Storage().SQLitePath())
	assert.Equal(t, "bills", cfg.Postgres().Database())
	assert.True(t, cfg.Memcached().Enabled())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka().Brokers())
}

func Test_OnParse_ShouldKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte("telegram:\n  token: x\n"))

	require.NoError(t, err)
	assert.Equal(t, 14, cfg.App().LookaheadDays())
	assert.Equal(t, "approximate", cfg.App().MonthAdvance())
	assert.Equal(t, "clamp", cfg.App().DayPolicy())
	assert.Equal(t, DriverMemory, cfg.Storage().Driver())
	assert.Equal(t, "digest-requests", cfg.Kafka().DigestTopic())
	assert.Equal(t, "0 9 * * *", cfg.Scheduler().DigestSpec())
	assert.False(t, cfg.Memcached().Enabled())
}

func Test_OnEnvSecrets_ShouldOverrideFile(t *testing.T) {
	t.Setenv(telegramTokenEnvKey, "env-token")
	t.Setenv(postgresPasswordEnvKey, "env-secret")

	cfg, err := Parse([]byte(sampleYAML))

	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Telegram().Token())
	assert.Equal(t, "env-secret", cfg.Postgres().Password())
}

func Test_OnUnknownDriver_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("storage:\n  driver: mongo\n"))

	assert.Error(t, err)
}

func Test_OnUnknownTimezone_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("app:\n  timezone: Mars/Olympus\n"))

	assert.ErrorContains(t, err, "Mars/Olympus")
}

func Test_OnUnvalidatedTimezone_ShouldFallBackToUTC(t *testing.T) {
	app := AppConfig{TimezoneName: "Mars/Olympus"}

	assert.Equal(t, time.UTC, app.Location())
}

func Test_OnLoad_ShouldReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Postgres().Host())
}

func Test_OnMissingFile_ShouldFail(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}
