package config

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultFilePath   = "data/user_data.csv"
	defaultSQLitePath = "data/bills.db"
)

type StorageConfig struct {
	DriverName string `yaml:"driver"`
	File       string `yaml:"file-path"`
	SQLite     string `yaml:"sqlite-path"`
}

func (s *StorageConfig) Driver() string {
	return s.DriverName
}

func (s *StorageConfig) FilePath() string {
	return s.File
}

func (s *StorageConfig) SQLitePath() string {
	return s.SQLite
}
