package api

import (
	"time"

	"github.com/josebarbozaDUOC/API-TASK/internal/domain"
)

// CreateTaskRequest defines the payload for creating a task.
// Title is required; description is optional.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// UpdateTaskRequest defines the payload for updating a task. Every field is
// optional; a field absent from the JSON body leaves the stored value
// untouched. Pointers distinguish "omitted" from "set to the zero value".
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Completed   *bool   `json:"completed"`
}

// TaskResponse defines the representation of a task returned by every
// endpoint. Description serializes as null when the task has none;
// CreatedAt serializes as an ISO-8601 timestamp.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// taskToResponse converts a domain.Task to its API representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}
