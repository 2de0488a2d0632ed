package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageError(t *testing.T) {
	t.Run("with underlying error", func(t *testing.T) {
		underlying := errors.New("connection refused")
		err := NewStorageError("postgres", "connect", underlying)

		assert.Contains(t, err.Error(), "postgres")
		assert.Contains(t, err.Error(), "connect")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("without underlying error", func(t *testing.T) {
		err := NewStorageError("sqlite", "create", nil)
		assert.Equal(t, "sqlite create failed", err.Error())
	})

	t.Run("matches ErrStorage", func(t *testing.T) {
		err := NewStorageError("mysql", "update", errors.New("gone away"))
		assert.ErrorIs(t, err, ErrStorage)
	})
}
