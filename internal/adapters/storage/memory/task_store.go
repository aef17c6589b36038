package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/domain/task"
	"github.com/taskboard-dev/taskboard/internal/ports"
)

// Compile-time checks that TaskStore implements its ports.
var (
	_ ports.TaskRepository = (*TaskStore)(nil)
	_ ports.HealthChecker  = (*TaskStore)(nil)
)

// TaskStore is a thread-safe in-memory implementation of
// [ports.TaskRepository].
type TaskStore struct {
	mu    sync.RWMutex
	byID  map[string]task.Task
	order []string
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		byID: make(map[string]task.Task),
	}
}

// Create inserts the task under a newly assigned UUID key and stamps
// CreatedAt/UpdatedAt. The stored copy is returned; the input is not retained.
func (s *TaskStore) Create(_ context.Context, t *task.Task) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *t
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.byID[stored.ID] = stored
	s.order = append(s.order, stored.ID)

	return &stored, nil
}

// Get returns a copy of the task with the given ID, or domain.ErrNotFound.
func (s *TaskStore) Get(_ context.Context, id string) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

// List returns tasks matching the filter in insertion order.
func (s *TaskStore) List(_ context.Context, filter task.Filter) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]task.Task, 0, len(s.order))
	for _, id := range s.order {
		t := s.byID[id]
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Update applies mutate to a copy of the stored task while holding the write
// lock, so the read-modify-write is atomic with respect to other updates and
// deletes on the same ID. If mutate fails, the stored task is untouched and
// the error is returned as-is. On success UpdatedAt is stamped and the new
// value is stored and returned.
func (s *TaskStore) Update(_ context.Context, id string, mutate func(*task.Task) error) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if err := mutate(&t); err != nil {
		return nil, err
	}

	t.UpdatedAt = time.Now().UTC()
	s.byID[id] = t

	return &t, nil
}

// Delete removes the task permanently, or returns domain.ErrNotFound.
func (s *TaskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}

	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool {
		return existing == id
	})
	return nil
}

// Name implements ports.HealthChecker.
func (s *TaskStore) Name() string {
	return "task-store"
}

// HealthCheck implements ports.HealthChecker. The store is in-process, so it
// only reports context cancellation.
func (s *TaskStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
