package domain

import "time"

// Task represents a single to-do item.
//
// The ID is assigned by the storage backend on creation and is immutable
// afterwards, as is CreatedAt. Description is optional and stays nil for
// tasks that never had one.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates a Task with the given title and optional description.
// Completed defaults to false and CreatedAt is captured at call time in UTC.
// The ID is left at zero; storage backends assign it on creation.
func NewTask(title string, description *string) *Task {
	return &Task{
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// MarkComplete marks the task as completed.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// MarkIncomplete marks the task as not completed.
func (t *Task) MarkIncomplete() {
	t.Completed = false
}

// Clone returns a deep copy of the task. Storage backends hand out clones
// so that callers mutating a returned task can never alter stored state.
func (t *Task) Clone() *Task {
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return &c
}
