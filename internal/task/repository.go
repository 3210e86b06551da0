package task

import "context"

// Counts aggregates task totals per status.
type Counts struct {
	ToDo       int
	InProgress int
	Done       int
}

// Total returns the number of tasks across all statuses.
func (c Counts) Total() int {
	return c.ToDo + c.InProgress + c.Done
}

// Repository defines the storage interface for tasks.
type Repository interface {
	// CreateTask inserts a new task and returns it with its assigned ID.
	// Returns ErrEmptyDescription if the description is blank.
	CreateTask(ctx context.Context, description string, priority Priority) (Task, error)

	// GetTask retrieves a task by ID.
	// Returns ErrTaskNotFound if no task has that ID.
	GetTask(ctx context.Context, id int64) (Task, error)

	// ListTasks returns the tasks passing the filter in the given order.
	ListTasks(ctx context.Context, f Filter, s Sort) ([]Task, error)

	// UpdateDescription rewrites a task description in place.
	// Returns ErrEmptyDescription if the description is blank.
	UpdateDescription(ctx context.Context, id int64, description string) error

	// SetStatus updates a task's status.
	SetStatus(ctx context.Context, id int64, st Status) error

	// SetPriority updates a task's priority.
	SetPriority(ctx context.Context, id int64, p Priority) error

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, id int64) error

	// CountByStatus returns task totals per status, ignoring any filter.
	CountByStatus(ctx context.Context) (Counts, error)

	// Close releases any resources held by the repository.
	Close() error
}
