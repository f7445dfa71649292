package service

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStore is the persistence surface the project service needs.
type ProjectStore interface {
	Insert(ctx context.Context, p *domain.Project) error
	List(ctx context.Context) ([]*domain.Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProjectService struct {
	projects ProjectStore
	tasks    TaskStore
}

func NewProjectService(projects ProjectStore, tasks TaskStore) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks}
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Create(ctx context.Context, name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("name", "project name is required")
	}

	project := &domain.Project{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes the project and every task referencing it. Tasks go first:
// the store enforces no referential integrity, so deleting the parent before
// its children could leave orphans if the second call fails.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}

	if _, err := s.projects.FindByID(ctx, oid); err != nil {
		return err
	}

	removed, err := s.tasks.DeleteByProject(ctx, oid)
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Info("cascade deleted tasks", "project_id", id, "count", removed)
	}

	return s.projects.Delete(ctx, oid)
}
