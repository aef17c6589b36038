// Package memory provides in-memory storage adapters implementing the
// repository ports. Each store owns a keyed map guarded by a RWMutex and
// preserves insertion order for listing. Stores are constructed explicitly
// (one per process, or one per test) and injected into services.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/domain/project"
	"github.com/taskboard-dev/taskboard/internal/ports"
)

// Compile-time check that ProjectStore implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectStore)(nil)

// ProjectStore is a thread-safe in-memory implementation of
// [ports.ProjectRepository].
type ProjectStore struct {
	mu    sync.RWMutex
	byID  map[string]project.Project
	order []string
}

// NewProjectStore creates an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		byID: make(map[string]project.Project),
	}
}

// Create inserts the project under a newly assigned UUID key and stamps
// CreatedAt. The stored copy is returned; the input is not retained.
func (s *ProjectStore) Create(_ context.Context, p *project.Project) (*project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	s.byID[stored.ID] = stored
	s.order = append(s.order, stored.ID)

	return &stored, nil
}

// Get returns a copy of the project with the given ID, or domain.ErrNotFound.
func (s *ProjectStore) Get(_ context.Context, id string) (*project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// List returns all projects in insertion order.
func (s *ProjectStore) List(_ context.Context) ([]project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]project.Project, 0, len(s.order))
	for _, id := range s.order {
		projects = append(projects, s.byID[id])
	}
	return projects, nil
}
