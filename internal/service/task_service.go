package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskRepository defines the repository interface for the service layer
type TaskRepository interface {
	// Create saves a new task and assigns its ID
	Create(ctx context.Context, task *domain.Task) error

	// List returns every task ordered by ID
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update overwrites the mutable fields of an existing task
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new repository instance that uses the provided transaction
	WithTx(tx *sql.Tx) TaskRepository

	// DB returns the underlying database connection
	DB() *sql.DB
}

// TaskService provides task-related operations
type TaskService interface {
	// List returns every task. An empty store yields an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create validates params and persists a new task.
	// Returns a domain.ValidationError if the title is missing or blank.
	Create(ctx context.Context, params domain.NewTaskParams) (*domain.Task, error)

	// Update applies the fields present in patch to the task and advances
	// its UpdatedAt. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskRepo TaskRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewTaskService creates a new TaskService
// It returns an error if the repository is nil.
func NewTaskService(taskRepo TaskRepository, logger *slog.Logger) (TaskService, error) {
	if taskRepo == nil {
		return nil, domain.NewValidationError("taskRepo", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskRepo: taskRepo,
		logger:   logger.With(slog.String("component", "task_service")),
		now:      domain.Now,
	}, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", redact.Error(err)))
		return nil, NewTaskServiceError("list_tasks", "failed to retrieve tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(
	ctx context.Context,
	params domain.NewTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(params, s.now())
	if err != nil {
		log.Debug("rejected invalid task", slog.String("error", redact.Error(err)))
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// Update implements TaskService.Update
// The lookup, patch and write run in a single transaction.
func (s *taskServiceImpl) Update(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))

	if err := patch.Validate(); err != nil {
		log.Debug("rejected invalid patch", slog.String("error", redact.Error(err)))
		return nil, err
	}

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.taskRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.taskRepo.WithTx(tx)

		task, err := txRepo.GetByID(ctx, id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return ErrTaskNotFound
			}
			return NewTaskServiceError("update_task", "failed to retrieve task", err)
		}

		if err := task.Apply(patch, s.now()); err != nil {
			return err
		}

		if err := txRepo.Update(ctx, task); err != nil {
			if store.IsNotFoundError(err) {
				return ErrTaskNotFound
			}
			if errors.Is(err, domain.ErrValidation) {
				return err
			}
			return NewTaskServiceError("update_task", "failed to save task", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTaskNotFound):
			log.Debug("task not found")
			return nil, ErrTaskNotFound
		case errors.Is(err, domain.ErrValidation):
			return nil, err
		}
		var serviceErr *TaskServiceError
		if errors.As(err, &serviceErr) {
			log.Error("failed to update task", slog.String("error", redact.Error(err)))
			return nil, err
		}
		log.Error("update transaction failed", slog.String("error", redact.Error(err)))
		return nil, NewTaskServiceError("update_task", "transaction failed", err)
	}

	log.Info("task updated")
	return updated, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found")
			return ErrTaskNotFound
		}
		log.Error("failed to delete task", slog.String("error", redact.Error(err)))
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted")
	return nil
}
