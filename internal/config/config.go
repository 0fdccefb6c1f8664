package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "data/config.yaml"
	configFileEnvKey  = "CONFIG_FILE"

	telegramTokenEnvKey    = "TELEGRAM_TOKEN"
	postgresPasswordEnvKey = "POSTGRES_PASSWORD"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Ops       OpsConfig       `yaml:"ops"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

// New reads the YAML config named by CONFIG_FILE (data/config.yaml by
// default). A .env file, when present, is loaded first so secrets can be
// kept out of the YAML.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}
	return Load(path)
}

func Load(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.applyEnv()
	if err = s.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			Lookahead:     defaultLookaheadDays,
			TimezoneName:  defaultTimezone,
			DayPolicyName: defaultDayPolicy,
			AdvanceName:   defaultMonthAdvance,
		},
		Storage:   StorageConfig{DriverName: DriverMemory, File: defaultFilePath, SQLite: defaultSQLitePath},
		Kafka:     KafkaConfig{Consumer: defaultConsumerGroup, Topic: defaultDigestTopic},
		GRPC:      GRPCConfig{Addr: defaultAcceptorAddr},
		Scheduler: SchedulerConfig{Spec: defaultDigestCron},
		Ops:       OpsConfig{Addr: defaultOpsAddr},
		Jaeger:    JaegerConfig{Rate: defaultSampleRate},
	}
}

func (s *Service) applyEnv() {
	if token := os.Getenv(telegramTokenEnvKey); token != "" {
		s.config.Telegram.ApiToken = token
	}
	if pswd := os.Getenv(postgresPasswordEnvKey); pswd != "" {
		s.config.Postgres.Pswd = pswd
	}
}

func (s *Service) validate() error {
	switch s.config.Storage.DriverName {
	case DriverMemory, DriverFile, DriverPostgres, DriverSQLite:
	default:
		return errors.Errorf("unknown storage driver %q", s.config.Storage.DriverName)
	}
	if s.config.App.Lookahead < 0 {
		return errors.New("lookahead-days must not be negative")
	}
	if _, err := time.LoadLocation(s.config.App.TimezoneName); err != nil {
		return errors.Wrapf(err, "unknown timezone %q", s.config.App.TimezoneName)
	}
	return nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) GRPC() *GRPCConfig {
	return &s.config.GRPC
}

func (s *Service) Scheduler() *SchedulerConfig {
	return &s.config.Scheduler
}

func (s *Service) Ops() *OpsConfig {
	return &s.config.Ops
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
