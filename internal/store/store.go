package store

import (
	"context"

	"github.com/josebarbozaDUOC/API-TASK/internal/domain"
)

// TaskStore defines the interface for task persistence.
//
// "No such id" is a normal outcome at this layer, reported through the ok /
// deleted return values, never through an error. Errors are reserved for
// storage failures (engine unreachable, constraint violation, bad row).
// Converting absence into a failure is the service layer's job.
//
// Every returned Task is a value independent of internal storage state:
// callers may mutate it freely without affecting what the store holds.
type TaskStore interface {
	// Create persists a new task and returns it with the backend-assigned ID
	// and resolved CreatedAt. Any ID on the input is ignored. IDs are strictly
	// increasing per store instance and never reused, even after deletes.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// GetAll returns every task in the store. The memory backend preserves
	// insertion order; SQL backends order by ascending id. Since ids are
	// assigned monotonically the two coincide in practice, but callers must
	// not rely on anything beyond ascending creation order. An empty store
	// yields an empty slice, never an error.
	GetAll(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its id. ok is false when no task has that
	// id; that is not an error.
	GetByID(ctx context.Context, id int64) (task *domain.Task, ok bool, err error)

	// Update replaces Title, Description and Completed of the task at id with
	// those of the supplied task, preserving the stored ID and CreatedAt.
	// ok is false when id does not exist; no upsert is performed.
	Update(ctx context.Context, id int64, task *domain.Task) (updated *domain.Task, ok bool, err error)

	// Delete removes the task at id. deleted is true if a record existed and
	// was removed, false if nothing matched. Repeated calls after the first
	// return false, not an error.
	Delete(ctx context.Context, id int64) (deleted bool, err error)
}
