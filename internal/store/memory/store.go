// Package memory provides an in-memory TaskStore backend.
//
// Each Store instance owns its own backing slice and id counter; distinct
// instances are fully isolated. Nothing is persisted across process restarts.
package memory

import (
	"context"
	"sync"

	"github.com/josebarbozaDUOC/API-TASK/internal/domain"
	"github.com/josebarbozaDUOC/API-TASK/internal/store"
)

// Store implements store.TaskStore with an ordered in-memory slice and a
// monotonically increasing id counter. The counter is never decremented or
// reused, including after deletes. A mutex guards the slice because Go
// slices offer no native safety under concurrent HTTP handlers.
type Store struct {
	mu     sync.Mutex
	tasks  []*domain.Task
	nextID int64
}

// Ensure Store implements store.TaskStore.
var _ store.TaskStore = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{nextID: 1}
}

// Create implements store.TaskStore.Create.
func (s *Store) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := task.Clone()
	stored.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, stored)

	return stored.Clone(), nil
}

// GetAll implements store.TaskStore.GetAll. Tasks are returned in insertion
// order; each element is a copy of the stored record.
func (s *Store) GetAll(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Clone())
	}
	return out, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.find(id); t != nil {
		return t.Clone(), true, nil
	}
	return nil, false, nil
}

// Update implements store.TaskStore.Update. The stored ID and CreatedAt are
// preserved; only Title, Description and Completed are replaced.
func (s *Store) Update(ctx context.Context, id int64, task *domain.Task) (*domain.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return nil, false, nil
	}

	t.Title = task.Title
	t.Completed = task.Completed
	if task.Description != nil {
		d := *task.Description
		t.Description = &d
	} else {
		t.Description = nil
	}

	return t.Clone(), true, nil
}

// Delete implements store.TaskStore.Delete.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// find returns the stored task with the given id, or nil. Callers must hold mu.
func (s *Store) find(id int64) *domain.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
