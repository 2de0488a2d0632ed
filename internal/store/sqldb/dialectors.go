package sqldb

import (
	"log/slog"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

// NewPostgres opens the PostgreSQL variant of the shared SQL store.
func NewPostgres(dsn string, log *slog.Logger) (*Store, error) {
	return New(postgres.Open(dsn), "postgres", log)
}

// NewMySQL opens the MySQL variant of the shared SQL store.
func NewMySQL(dsn string, log *slog.Logger) (*Store, error) {
	return New(mysql.Open(dsn), "mysql", log)
}
