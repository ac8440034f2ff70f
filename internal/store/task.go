package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every method is a single statement and is atomic on its own.
type TaskStore interface {
	// Create inserts a new task and sets task.ID to the identifier assigned
	// by the store. IDs are never reused.
	// Returns validation errors if the task is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// List returns every task ordered by ID. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update overwrites the mutable fields (title, description, completed,
	// updated_at) of an existing task. CreatedAt is never written.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a TaskStore that runs its queries inside tx.
	//
	// Example usage:
	//   err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
	//       task, err := taskStore.WithTx(tx).GetByID(ctx, id)
	//       ...
	//   })
	WithTx(tx *sql.Tx) TaskStore
}
