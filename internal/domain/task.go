package domain

import (
	"strings"
	"time"
)

// TimestampPrecision is the resolution at which task timestamps are kept.
// It matches PostgreSQL's timestamptz so a value read back from the store
// compares equal to the value that was written.
const TimestampPrecision = time.Microsecond

// Task is a single to-do item.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTaskParams carries the caller-supplied fields for a new task.
type NewTaskParams struct {
	Title       string
	Description string
	Completed   bool
}

// TaskPatch describes a partial update. Only fields that are set are applied.
type TaskPatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
}

// Now returns the current time in UTC at task timestamp precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(TimestampPrecision)
}

// NewTask builds an unsaved task from params. The ID is left at zero for the
// store to assign. CreatedAt and UpdatedAt are both set to now.
func NewTask(params NewTaskParams, now time.Time) (*Task, error) {
	ts := now.UTC().Truncate(TimestampPrecision)
	task := &Task{
		Title:       params.Title,
		Description: params.Description,
		Completed:   params.Completed,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the invariants every stored task must satisfy.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return NewValidationError("updated_at", "cannot be before created_at", ErrValidation)
	}
	return nil
}

// Validate rejects patches that would break task invariants: null values
// and a blank title.
func (p TaskPatch) Validate() error {
	if p.Title.Set {
		if p.Title.Null {
			return NewValidationError("title", "cannot be null", ErrNullField)
		}
		if strings.TrimSpace(p.Title.Value) == "" {
			return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
		}
	}
	if p.Description.Set && p.Description.Null {
		return NewValidationError("description", "cannot be null", ErrNullField)
	}
	if p.Completed.Set && p.Completed.Null {
		return NewValidationError("completed", "cannot be null", ErrNullField)
	}
	return nil
}

// IsEmpty reports whether the patch sets no fields.
func (p TaskPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Completed.Set
}

// Apply validates the patch, overwrites the fields it sets and advances
// UpdatedAt. UpdatedAt moves forward even when the patch is empty or changes
// nothing. If now is not after the current UpdatedAt, UpdatedAt is bumped by
// one tick of TimestampPrecision so that it always strictly increases.
func (t *Task) Apply(p TaskPatch, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if v, ok := p.Description.Get(); ok {
		t.Description = v
	}
	if v, ok := p.Completed.Get(); ok {
		t.Completed = v
	}

	t.touch(now)
	return nil
}

func (t *Task) touch(now time.Time) {
	ts := now.UTC().Truncate(TimestampPrecision)
	if !ts.After(t.UpdatedAt) {
		ts = t.UpdatedAt.Add(TimestampPrecision)
	}
	t.UpdatedAt = ts
}
