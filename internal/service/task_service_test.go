package service

import (
	"context"
	"testing"

	"github.com/josebarbozaDUOC/API-TASK/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(memory.New(), nil)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTask(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("with description", func(t *testing.T) {
		task, err := svc.CreateTask(ctx, CreateTaskInput{
			Title:       "Buy milk",
			Description: strPtr("2 liters"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, "2 liters", *task.Description)
		assert.False(t, task.Completed)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := svc.CreateTask(ctx, CreateTaskInput{Title: "   "})
		require.Error(t, err)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "title", vErr.Field)
	})
}

func TestGetTaskByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	t.Run("existing", func(t *testing.T) {
		got, err := svc.GetTaskByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("missing becomes typed not-found", func(t *testing.T) {
		_, err := svc.GetTaskByID(ctx, 42)
		require.Error(t, err)

		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "task", nfErr.Entity)
		assert.Equal(t, int64(42), nfErr.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetAllTasks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = svc.CreateTask(ctx, CreateTaskInput{Title: "one"})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, CreateTaskInput{Title: "two"})
	require.NoError(t, err)

	all, err = svc.GetAllTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateTaskPartialPatch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreateTaskInput{
		Title:       "A",
		Description: strPtr("B"),
	})
	require.NoError(t, err)

	// Patching completed alone must leave title and description untouched.
	updated, err := svc.UpdateTask(ctx, created.ID, TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)

	assert.Equal(t, "A", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "B", *updated.Description)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateTaskAllFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreateTaskInput{Title: "A"})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, created.ID, TaskPatch{
		Title:       strPtr("New title"),
		Description: strPtr("New description"),
		Completed:   boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "New description", *updated.Description)
	assert.True(t, updated.Completed)
}

func TestUpdateTaskMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateTask(context.Background(), 42, TaskPatch{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	deleted, err := svc.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetTaskByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DeleteTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound, "deleting a deleted task is not found")
}

// TestTaskLifecycle walks the canonical create/update/delete scenario.
func TestTaskLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.Description)
	assert.False(t, created.Completed)

	updated, err := svc.UpdateTask(ctx, 1, TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.True(t, updated.Completed)

	deleted, err := svc.DeleteTask(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetTaskByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
