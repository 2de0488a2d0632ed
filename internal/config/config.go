package config

import "fmt"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Repository RepositoryConfig `mapstructure:"repository" validate:"required"`
	SQLite     SQLiteConfig     `mapstructure:"sqlite"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	MySQL      MySQLConfig      `mapstructure:"mysql"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int      `mapstructure:"port"         validate:"required,gt=0,lt=65536"`
	LogLevel    string   `mapstructure:"log_level"    validate:"required,oneof=debug info warn error"`
	Environment string   `mapstructure:"environment"  validate:"required"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// RepositoryConfig selects the storage backend.
//
// Type names the backend ("memory", "sqlite", "postgres", "mysql"). TestType
// overrides Type when Environment is "testing" (case-insensitive), so test
// runs never touch the configured production backend.
type RepositoryConfig struct {
	Type     string `mapstructure:"type"      validate:"required"`
	TestType string `mapstructure:"test_type"`
}

// SQLiteConfig contains settings for the embedded file backend.
type SQLiteConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// PostgresConfig contains connection settings for the PostgreSQL backend.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gt=0,lt=65536"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// DSN builds the PostgreSQL connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Database,
	)
}

// MySQLConfig contains connection settings for the MySQL backend.
type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gt=0,lt=65536"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// DSN builds the MySQL connection string. parseTime is required so DATETIME
// columns scan into time.Time.
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Database,
	)
}
