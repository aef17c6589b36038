// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and storage through repository ports.
package app

import (
	"context"
	"log/slog"

	"github.com/taskboard-dev/taskboard/internal/domain/project"
	"github.com/taskboard-dev/taskboard/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the project
// repository port. It handles validation and structured logging; the
// repository assigns identifiers.
type ProjectService struct {
	projects ports.ProjectRepository
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger is replaced with
// a no-op logger.
func NewProjectService(projects ports.ProjectRepository, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		projects: projects,
		logger:   logger,
	}
}

// CreateProject validates and creates a new project. The name is stored
// verbatim; validation only rejects empty or whitespace-only names.
func (s *ProjectService) CreateProject(ctx context.Context, name string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("name", name))

	p := &project.Project{Name: name}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create project",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// ListProjects returns all projects in insertion order.
func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects")

	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return projects, nil
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("id", id))

	p, err := s.projects.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project",
			slog.String("operation", "GetProject"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}
