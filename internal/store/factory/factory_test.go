package factory

import (
	"path/filepath"
	"testing"

	"github.com/josebarbozaDUOC/API-TASK/internal/config"
	"github.com/josebarbozaDUOC/API-TASK/internal/store/memory"
	"github.com/josebarbozaDUOC/API-TASK/internal/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:        8000,
			LogLevel:    "info",
			Environment: "development",
		},
		Repository: config.RepositoryConfig{
			Type:     "memory",
			TestType: "memory",
		},
		SQLite: config.SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "tasks.db"),
		},
	}
}

func TestNewMemoryCaseInsensitive(t *testing.T) {
	cfg := testConfig(t)

	for _, name := range []string{"memory", "MEMORY", "Memory"} {
		t.Run(name, func(t *testing.T) {
			backend, err := New(cfg, name, nil)
			require.NoError(t, err)
			assert.IsType(t, &memory.Store{}, backend)
		})
	}
}

func TestNewSQLite(t *testing.T) {
	cfg := testConfig(t)

	backend, err := New(cfg, "sqlite", nil)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, backend)
}

func TestNewUnknownType(t *testing.T) {
	cfg := testConfig(t)

	backend, err := New(cfg, "mongodb", nil)
	require.Error(t, err)
	assert.Nil(t, backend)

	var unknownErr *UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "mongodb", unknownErr.Requested)

	for _, want := range []string{"memory", "sqlite", "postgres", "mysql"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNewUsesConfiguredType(t *testing.T) {
	cfg := testConfig(t)
	cfg.Repository.Type = "sqlite"

	backend, err := New(cfg, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, backend)
}

func TestNewExplicitTypeWinsOverConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Repository.Type = "sqlite"

	backend, err := New(cfg, "memory", nil)
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, backend)
}

func TestNewTestingEnvironmentOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.Repository.Type = "sqlite"
	cfg.Repository.TestType = "memory"

	// Environment match is case-insensitive.
	for _, env := range []string{"testing", "TESTING", "Testing"} {
		t.Run(env, func(t *testing.T) {
			cfg.Server.Environment = env

			backend, err := New(cfg, "", nil)
			require.NoError(t, err)
			assert.IsType(t, &memory.Store{}, backend)
		})
	}
}

func TestNewConstructsFreshInstances(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg, "memory", nil)
	require.NoError(t, err)
	b, err := New(cfg, "memory", nil)
	require.NoError(t, err)

	assert.NotSame(t, a, b, "each factory call must construct a new backend")
}

func TestAvailable(t *testing.T) {
	assert.Equal(t,
		[]string{"memory", "mysql", "postgres", "postgresql", "sqlite"},
		Available())
}
