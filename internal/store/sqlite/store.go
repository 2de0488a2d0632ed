// Package sqlite provides an embedded file-based TaskStore backend.
//
// Tasks live in a single-file SQLite database. The backend owns its schema:
// an idempotent CREATE TABLE IF NOT EXISTS runs once at construction. This is
// the baseline persistence guarantee: durable across restarts, single-writer
// safe through SQLite's own locking, not meant for high write concurrency.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/josebarbozaDUOC/API-TASK/internal/domain"
	"github.com/josebarbozaDUOC/API-TASK/internal/store"
)

const backendName = "sqlite"

// AUTOINCREMENT keeps deleted ids from ever being reassigned, matching the
// monotonic id guarantee of the other backends.
const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       VARCHAR(100) NOT NULL,
	description VARCHAR(500),
	completed   BOOLEAN NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL
)`

// Store implements store.TaskStore on a single-file SQLite database.
// Each operation borrows a pooled connection from database/sql for the
// duration of that call only; no transaction spans public calls.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure Store implements store.TaskStore.
var _ store.TaskStore = (*Store)(nil)

// New opens (creating if needed) the SQLite database at path and ensures the
// tasks table exists. Construction failures are fatal and propagate to the
// caller. If logger is nil, the default logger is used.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "sqlite_store"))

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, store.NewStorageError(backendName, "open", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, store.NewStorageError(backendName, "connect", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, store.NewStorageError(backendName, "create schema", err)
	}

	logger.Debug("sqlite store ready", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create implements store.TaskStore.Create. The id comes from SQLite's
// auto-increment and is read back via LastInsertId.
func (s *Store) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, completed, created_at) VALUES (?, ?, ?, ?)`,
		task.Title, descriptionValue(task.Description), task.Completed, task.CreatedAt,
	)
	if err != nil {
		s.logger.Error("failed to insert task", "error", err)
		return nil, store.NewStorageError(backendName, "create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, store.NewStorageError(backendName, "create", err)
	}

	created := task.Clone()
	created.ID = id
	return created, nil
}

// GetAll implements store.TaskStore.GetAll, ordered by ascending id.
func (s *Store) GetAll(ctx context.Context) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, completed, created_at FROM tasks ORDER BY id`,
	)
	if err != nil {
		s.logger.Error("failed to query tasks", "error", err)
		return nil, store.NewStorageError(backendName, "get all", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStorageError(backendName, "get all", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStorageError(backendName, "get all", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Task, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, completed, created_at FROM tasks WHERE id = ?`, id,
	)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.NewStorageError(backendName, "get by id", err)
	}
	return task, true, nil
}

// Update implements store.TaskStore.Update. The stored created_at is left
// untouched by the UPDATE statement, so it is preserved by construction.
func (s *Store) Update(ctx context.Context, id int64, task *domain.Task) (*domain.Task, bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, completed = ? WHERE id = ?`,
		task.Title, descriptionValue(task.Description), task.Completed, id,
	)
	if err != nil {
		s.logger.Error("failed to update task", "task_id", id, "error", err)
		return nil, false, store.NewStorageError(backendName, "update", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, store.NewStorageError(backendName, "update", err)
	}
	if affected == 0 {
		return nil, false, nil
	}

	return s.GetByID(ctx, id)
}

// Delete implements store.TaskStore.Delete.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		s.logger.Error("failed to delete task", "task_id", id, "error", err)
		return false, store.NewStorageError(backendName, "delete", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, store.NewStorageError(backendName, "delete", err)
	}
	return affected > 0, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(sc scanner) (*domain.Task, error) {
	var task domain.Task
	var description sql.NullString

	if err := sc.Scan(&task.ID, &task.Title, &description, &task.Completed, &task.CreatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		task.Description = &description.String
	}
	return &task, nil
}

func descriptionValue(description *string) sql.NullString {
	if description == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *description, Valid: true}
}
