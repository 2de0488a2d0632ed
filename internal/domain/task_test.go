package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("with description", func(t *testing.T) {
		desc := "milk, eggs, bread"
		before := time.Now().UTC()
		task := NewTask("Buy groceries", &desc)
		after := time.Now().UTC()

		assert.Equal(t, int64(0), task.ID, "ID must be left for the store to assign")
		assert.Equal(t, "Buy groceries", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, desc, *task.Description)
		assert.False(t, task.Completed, "new tasks must not be completed")
		assert.False(t, task.CreatedAt.Before(before))
		assert.False(t, task.CreatedAt.After(after))
	})

	t.Run("without description", func(t *testing.T) {
		task := NewTask("Buy milk", nil)
		assert.Nil(t, task.Description)
	})
}

func TestTaskMarkComplete(t *testing.T) {
	task := NewTask("Buy milk", nil)

	task.MarkComplete()
	assert.True(t, task.Completed)

	task.MarkIncomplete()
	assert.False(t, task.Completed)
}

func TestTaskClone(t *testing.T) {
	desc := "original"
	task := NewTask("Buy milk", &desc)
	task.ID = 7

	clone := task.Clone()
	require.Equal(t, task, clone)

	// Mutating the clone must not leak back into the original.
	clone.Title = "changed"
	*clone.Description = "changed"
	clone.Completed = true

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "original", *task.Description)
	assert.False(t, task.Completed)
}
