package ports

import (
	"context"
	"time"

	"github.com/taskboard-dev/taskboard/internal/domain/project"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
)

// ProjectService defines the service port for project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// CreateProject creates a new project with the given name and returns
	// the created entity with server-assigned fields (ID, CreatedAt).
	// Returns domain.ErrValidation if the name is empty or whitespace-only.
	CreateProject(ctx context.Context, name string) (*project.Project, error)

	// ListProjects returns all projects in insertion order.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*project.Project, error)
}

// NewTask carries the caller-supplied fields for task creation. The service
// assigns the ID, the initial open status, and the timestamps.
type NewTask struct {
	Title   string
	Type    task.Type
	DueDate *time.Time
}

// TaskService defines the service port for task lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TaskService interface {
	// CreateTask creates a new task in the given project with status open.
	// Returns domain.ErrNotFound if the project does not exist, regardless
	// of the validity of the other fields.
	// Returns domain.ErrValidation if the title is empty or the type is
	// not recognized.
	CreateTask(ctx context.Context, projectID string, nt NewTask) (*task.Task, error)

	// ListTasks returns all tasks of the given project in insertion order.
	// Returns domain.ErrNotFound if the project does not exist.
	ListTasks(ctx context.Context, projectID string) ([]task.Task, error)

	// UpdateTask applies a partial update to a task. Nil patch fields are
	// left unchanged. Returns domain.ErrNotFound if the task does not
	// exist, domain.ErrValidation for a bad field value, and
	// domain.ErrInvalidTransition (as *task.TransitionError) for an
	// illegal status change.
	UpdateTask(ctx context.Context, taskID string, patch task.Patch) (*task.Task, error)

	// DeleteTask removes a task permanently.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, taskID string) error

	// BulkUpdateTasks applies patches to multiple tasks within the given
	// project concurrently. Uses partial success semantics: each update
	// succeeds or fails independently. Returns a hard error only for
	// request-level failures (project not found). Individual update
	// failures are collected in BulkUpdateResult.Errors.
	BulkUpdateTasks(ctx context.Context, projectID string, updates []TaskUpdate) (*BulkUpdateResult, error)
}

// TaskUpdate pairs a task ID with a patch for bulk operations.
type TaskUpdate struct {
	TaskID string
	Patch  task.Patch
}

// BulkUpdateError records a single failed task update within a bulk operation.
type BulkUpdateError struct {
	TaskID string
	Err    error
}

// BulkUpdateResult holds the outcomes of a bulk update operation.
// Updated contains successfully updated tasks; Errors contains per-item failures.
type BulkUpdateResult struct {
	Updated []task.Task
	Errors  []BulkUpdateError
}
