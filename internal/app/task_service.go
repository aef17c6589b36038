package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskboard-dev/taskboard/internal/app/fanout"
	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
	"github.com/taskboard-dev/taskboard/internal/ports"
)

// bulkUpdateWorkers bounds the number of concurrent task updates during a
// bulk operation.
const bulkUpdateWorkers = 4

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. It enforces that a task's
// project exists and that status changes follow the lifecycle state machine;
// the transition rules themselves live in the task domain package.
type TaskService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	logger   *slog.Logger
}

// NewTaskService creates a TaskService. A nil logger is replaced with a
// no-op logger.
func NewTaskService(projects ports.ProjectRepository, tasks ports.TaskRepository, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		projects: projects,
		tasks:    tasks,
		logger:   logger,
	}
}

// CreateTask creates a new task in the given project. The project is
// resolved before any field validation so that an unknown project always
// surfaces as not-found. New tasks start open.
func (s *TaskService) CreateTask(ctx context.Context, projectID string, nt ports.NewTask) (*task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("project_id", projectID))

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "CreateTask"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying project: %w", err)
	}

	t := &task.Task{
		ProjectID: projectID,
		Title:     nt.Title,
		Type:      nt.Type,
		DueDate:   nt.DueDate,
		Status:    task.StatusOpen,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating task: %w", err)
	}

	return created, nil
}

// ListTasks returns all tasks of the given project in insertion order.
func (s *TaskService) ListTasks(ctx context.Context, projectID string) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks", slog.String("project_id", projectID))

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "ListTasks"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying project: %w", err)
	}

	tasks, err := s.tasks.List(ctx, task.Filter{ProjectID: projectID})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return tasks, nil
}

// UpdateTask applies a partial update to a task. The patch runs inside the
// repository's update so that validation, the transition check, and the
// write happen as one read-modify-write.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, patch task.Patch) (*task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("task_id", taskID))

	updated, err := s.tasks.Update(ctx, taskID, patch.Apply)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteTask removes a task permanently.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", taskID))

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// BulkUpdateTasks applies patches to multiple tasks within the given project
// concurrently, with partial success semantics. Tasks outside the project
// fail their individual update with domain.ErrNotFound.
func (s *TaskService) BulkUpdateTasks(ctx context.Context, projectID string, updates []ports.TaskUpdate) (*ports.BulkUpdateResult, error) {
	s.logger.InfoContext(ctx, "bulk updating tasks",
		slog.String("project_id", projectID),
		slog.Int("count", len(updates)),
	)

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify project",
			slog.String("operation", "BulkUpdateTasks"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying project: %w", err)
	}

	results := fanout.Run(ctx, bulkUpdateWorkers, updates,
		func(ctx context.Context, u ports.TaskUpdate) (*task.Task, error) {
			return s.tasks.Update(ctx, u.TaskID, func(t *task.Task) error {
				if t.ProjectID != projectID {
					return domain.ErrNotFound
				}
				return u.Patch.Apply(t)
			})
		})

	out := &ports.BulkUpdateResult{}
	for i, res := range results {
		if res.Err != nil {
			out.Errors = append(out.Errors, ports.BulkUpdateError{
				TaskID: updates[i].TaskID,
				Err:    res.Err,
			})
			continue
		}
		out.Updated = append(out.Updated, *res.Value)
	}

	return out, nil
}
