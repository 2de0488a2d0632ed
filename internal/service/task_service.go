package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/josebarbozaDUOC/API-TASK/internal/domain"
	"github.com/josebarbozaDUOC/API-TASK/internal/store"
)

// entityTask names the entity kind carried by NotFoundError.
const entityTask = "task"

// CreateTaskInput carries the validated fields for creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
}

// TaskPatch carries a partial update. A nil field means "leave untouched";
// it is never interpreted as "set to the zero value". Each present field
// replaces the stored one.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskService wraps one TaskStore with the application's task operations.
type TaskService struct {
	store  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService on top of the given store.
// If log is nil, the default logger is used.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) *TaskService {
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{
		store:  taskStore,
		logger: log.With(slog.String("component", "task_service")),
	}
}

// CreateTask builds a new task from the input and persists it.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &ValidationError{Field: "title", Message: "must not be empty"}
	}

	created, err := s.store.Create(ctx, domain.NewTask(input.Title, input.Description))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task created", "task_id", created.ID)
	return created, nil
}

// GetAllTasks returns every task in the store.
func (s *TaskService) GetAllTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.store.GetAll(ctx)
}

// GetTaskByID retrieves one task. This is the single point where a missing
// record becomes an error: the store's "absent" turns into *NotFoundError
// here, for every consumer above the service.
func (s *TaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, ok, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Entity: entityTask, ID: id}
	}
	return task, nil
}

// UpdateTask applies the fields present in patch to the task at id and
// persists the result. Unset patch fields keep their stored values.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error) {
	current, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		current.Title = *patch.Title
	}
	if patch.Description != nil {
		current.Description = patch.Description
	}
	if patch.Completed != nil {
		current.Completed = *patch.Completed
	}

	updated, ok, err := s.store.Update(ctx, id, current)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The record vanished between the read and the write.
		return nil, &NotFoundError{Entity: entityTask, ID: id}
	}

	s.logger.Debug("task updated", "task_id", id)
	return updated, nil
}

// DeleteTask removes the task at id. A missing id is reported through the
// same not-found conversion as reads.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) (bool, error) {
	if _, err := s.GetTaskByID(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	s.logger.Debug("task deleted", "task_id", id)
	return deleted, nil
}
