package ports

import (
	"context"

	"github.com/taskboard-dev/taskboard/internal/domain/project"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
)

// ProjectRepository defines the storage port for Project entities.
// Implemented by storage adapters; called by the application layer.
// Keys are unique strings assigned by the repository at insertion.
type ProjectRepository interface {
	// Create inserts a new project, assigning its ID and CreatedAt, and
	// returns the stored entity.
	Create(ctx context.Context, p *project.Project) (*project.Project, error)

	// Get returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	Get(ctx context.Context, id string) (*project.Project, error)

	// List returns all projects in insertion order.
	List(ctx context.Context) ([]project.Project, error)
}

// TaskRepository defines the storage port for Task entities.
type TaskRepository interface {
	// Create inserts a new task, assigning its ID and timestamps, and
	// returns the stored entity.
	Create(ctx context.Context, t *task.Task) (*task.Task, error)

	// Get returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	Get(ctx context.Context, id string) (*task.Task, error)

	// List returns tasks matching the filter in insertion order.
	// Pass a zero-value Filter to list all tasks.
	List(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// Update applies mutate to the task with the given ID as a single
	// read-modify-write under the store's lock, so concurrent updates on
	// the same ID never race. If mutate returns an error the task is left
	// unchanged and the error is returned as-is.
	// Returns domain.ErrNotFound if the task does not exist.
	Update(ctx context.Context, id string, mutate func(*task.Task) error) (*task.Task, error)

	// Delete removes a task permanently.
	// Returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
