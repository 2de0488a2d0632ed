// Package sqldb provides the client/server SQL TaskStore backends.
//
// PostgreSQL and MySQL share one GORM-backed implementation; only the
// dialector differs. Keeping the two variants on the same code path (same
// model, same schema migration, same session discipline) avoids drift
// between them. The embedded sqlite backend deliberately does not live here:
// it owns its schema with hand-written SQL instead.
package sqldb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/josebarbozaDUOC/API-TASK/internal/domain"
	"github.com/josebarbozaDUOC/API-TASK/internal/store"
)

// Connection retry bounds. The database server is often still starting when
// the API comes up under an orchestrator, so New keeps trying for a while
// before declaring the backend unreachable.
const (
	connectAttempts = 30
	connectDelay    = 2 * time.Second
)

// taskRecord is the GORM model for the tasks table. AutoMigrate derives the
// idempotent schema from it, shared by both server backends.
type taskRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:100;not null"`
	Description *string   `gorm:"size:500"`
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the task model.
func (taskRecord) TableName() string {
	return "tasks"
}

// Store implements store.TaskStore on a client/server SQL database through
// GORM. Every public operation runs inside its own transaction: committed on
// success, rolled back on error, session released either way.
type Store struct {
	db      *gorm.DB
	backend string
	logger  *slog.Logger
}

// Ensure Store implements store.TaskStore.
var _ store.TaskStore = (*Store)(nil)

// New connects through the given dialector with bounded retry and ensures
// the tasks table exists. backend names the variant ("postgres", "mysql")
// for logs and errors. Construction failures are fatal and propagate to the
// caller. If log is nil, the default logger is used.
func New(dialector gorm.Dialector, backend string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", backend+"_store"))

	db, err := openWithRetry(dialector, backend, log)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return nil, store.NewStorageError(backend, "create schema", err)
	}

	return &Store{db: db, backend: backend, logger: log}, nil
}

// openWithRetry opens the connection and verifies it with a ping, retrying
// up to connectAttempts times with connectDelay between attempts. Individual
// queries are never retried; only connection establishment is.
func openWithRetry(dialector gorm.Dialector, backend string, log *slog.Logger) (*gorm.DB, error) {
	var lastErr error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			if sqlDB, pingErr := db.DB(); pingErr == nil {
				if pingErr = sqlDB.Ping(); pingErr == nil {
					log.Info("connected to database", "attempt", attempt)
					return db, nil
				}
				err = pingErr
			} else {
				err = pingErr
			}
		}

		lastErr = err
		if attempt < connectAttempts {
			log.Warn("database not ready, retrying",
				"attempt", attempt,
				"max_attempts", connectAttempts,
				"delay", connectDelay,
				"error", err)
			time.Sleep(connectDelay)
		}
	}

	log.Error("failed to connect after all retries", "attempts", connectAttempts, "error", lastErr)
	return nil, store.NewStorageError(backend, "connect", lastErr)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return store.NewStorageError(s.backend, "close", err)
	}
	return sqlDB.Close()
}

// Create implements store.TaskStore.Create. GORM populates the record's ID
// from the server-generated key during the insert, so no second query runs.
func (s *Store) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	rec := fromDomain(task)
	rec.ID = 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
	if err != nil {
		s.logger.Error("failed to create task", "error", err)
		return nil, store.NewStorageError(s.backend, "create", err)
	}

	return rec.toDomain(), nil
}

// GetAll implements store.TaskStore.GetAll, ordered by ascending id.
func (s *Store) GetAll(ctx context.Context) ([]*domain.Task, error) {
	var recs []taskRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Order("id").Find(&recs).Error
	})
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, store.NewStorageError(s.backend, "get all", err)
	}

	tasks := make([]*domain.Task, 0, len(recs))
	for i := range recs {
		tasks = append(tasks, recs[i].toDomain())
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Task, bool, error) {
	var rec taskRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.First(&rec, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error("failed to get task", "task_id", id, "error", err)
		return nil, false, store.NewStorageError(s.backend, "get by id", err)
	}

	return rec.toDomain(), true, nil
}

// Update implements store.TaskStore.Update. The existing row is loaded first
// inside the same transaction so CreatedAt is preserved and absence reported
// without an upsert.
func (s *Store) Update(ctx context.Context, id int64, task *domain.Task) (*domain.Task, bool, error) {
	var rec taskRecord
	found := true

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			return err
		}

		// A map keeps zero values (completed=false, NULL description)
		// writable; a struct update would skip them.
		return tx.Model(&rec).Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
		}).Error
	})
	if err != nil {
		s.logger.Error("failed to update task", "task_id", id, "error", err)
		return nil, false, store.NewStorageError(s.backend, "update", err)
	}
	if !found {
		return nil, false, nil
	}

	rec.Title = task.Title
	rec.Completed = task.Completed
	rec.Description = cloneDescription(task.Description)
	return rec.toDomain(), true, nil
}

// Delete implements store.TaskStore.Delete.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&taskRecord{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		s.logger.Error("failed to delete task", "task_id", id, "error", err)
		return false, store.NewStorageError(s.backend, "delete", err)
	}

	return affected > 0, nil
}

func fromDomain(task *domain.Task) *taskRecord {
	return &taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: cloneDescription(task.Description),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}

func (r *taskRecord) toDomain() *domain.Task {
	return &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: cloneDescription(r.Description),
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
	}
}

func cloneDescription(description *string) *string {
	if description == nil {
		return nil
	}
	d := *description
	return &d
}
