// Package factory translates a configured repository-type name into a
// concrete TaskStore backend. It is the only component that knows about
// concrete backend types; everything above it depends on store.TaskStore.
package factory

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/josebarbozaDUOC/API-TASK/internal/config"
	"github.com/josebarbozaDUOC/API-TASK/internal/store"
	"github.com/josebarbozaDUOC/API-TASK/internal/store/memory"
	"github.com/josebarbozaDUOC/API-TASK/internal/store/sqldb"
	"github.com/josebarbozaDUOC/API-TASK/internal/store/sqlite"
)

// testingEnvironment is the environment name (matched case-insensitively)
// under which the repository test-type override applies.
const testingEnvironment = "testing"

// builder constructs a backend from configuration.
type builder func(cfg *config.Config, log *slog.Logger) (store.TaskStore, error)

// registry maps normalized (lowercase) type names to backend constructors.
// "postgresql" is an alias kept for compatibility with older configs.
var registry = map[string]builder{
	"memory": func(_ *config.Config, _ *slog.Logger) (store.TaskStore, error) {
		return memory.New(), nil
	},
	"sqlite": func(cfg *config.Config, log *slog.Logger) (store.TaskStore, error) {
		return sqlite.New(cfg.SQLite.Path, log)
	},
	"postgres":   newPostgres,
	"postgresql": newPostgres,
	"mysql": func(cfg *config.Config, log *slog.Logger) (store.TaskStore, error) {
		return sqldb.NewMySQL(cfg.MySQL.DSN(), log)
	},
}

func newPostgres(cfg *config.Config, log *slog.Logger) (store.TaskStore, error) {
	return sqldb.NewPostgres(cfg.Postgres.DSN(), log)
}

// UnknownTypeError reports a repository-type name the factory does not
// support. It is a configuration error: fatal at startup, never retried.
type UnknownTypeError struct {
	Requested string
	Supported []string
}

// Error implements the error interface for UnknownTypeError.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("repository type %q not supported, available types: %s",
		e.Requested, strings.Join(e.Supported, ", "))
}

// New constructs the backend selected by repositoryType, or, when that is
// empty, by the configuration: Repository.Type normally, Repository.TestType
// when the environment is "testing". Type names are matched
// case-insensitively. Each call constructs a fresh backend; callers wanting
// a shared instance construct once at startup and inject it.
func New(cfg *config.Config, repositoryType string, log *slog.Logger) (store.TaskStore, error) {
	if log == nil {
		log = slog.Default()
	}

	if repositoryType == "" {
		repositoryType = cfg.Repository.Type
		if strings.EqualFold(cfg.Server.Environment, testingEnvironment) {
			repositoryType = cfg.Repository.TestType
		}
	}

	normalized := strings.ToLower(repositoryType)
	build, ok := registry[normalized]
	if !ok {
		return nil, &UnknownTypeError{Requested: repositoryType, Supported: Available()}
	}

	backend, err := build(cfg, log)
	if err != nil {
		return nil, err
	}

	log.Debug("repository instance created",
		"type", normalized,
		"environment", cfg.Server.Environment)
	return backend, nil
}

// Available returns the sorted list of supported repository-type names,
// aliases included.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
