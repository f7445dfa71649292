package service

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStore is the persistence surface the task service needs. The project
// service shares it for the cascade delete.
type TaskStore interface {
	Insert(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error)
}

// TaskPatch is a partial update: nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	ProjectID   *string
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// ListByProject returns the tasks referencing the project, oldest first as
// stored. A project with no tasks (or no project at all) yields an empty
// slice, not an error.
func (s *TaskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, domain.Invalid("projectId", "invalid project id")
	}
	return s.tasks.ListByProject(ctx, oid)
}

// Create stores a new task. The referenced project is not checked for
// existence; the cascade on project delete is the only integrity rule.
func (s *TaskService) Create(ctx context.Context, title, description, projectID, status string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.Invalid("title", "task title is required")
	}
	if projectID == "" {
		return nil, domain.Invalid("projectId", "projectId is required")
	}
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, domain.Invalid("projectId", "invalid project id")
	}

	st := domain.StatusTodo
	if status != "" {
		st = domain.TaskStatus(status)
		if !domain.ValidStatus(st) {
			return nil, domain.Invalid("status", "status must be one of Todo, In Progress, Done")
		}
	}

	task := &domain.Task{
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      st,
		ProjectID:   oid,
	}
	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial patch to the task and returns the updated record.
func (s *TaskService) Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("task %q: %w", id, domain.ErrNotFound)
	}

	task, err := s.tasks.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, domain.Invalid("title", "task title is required")
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil {
		st := domain.TaskStatus(*patch.Status)
		if !domain.ValidStatus(st) {
			return nil, domain.Invalid("status", "status must be one of Todo, In Progress, Done")
		}
		task.Status = st
	}
	if patch.ProjectID != nil {
		poid, err := primitive.ObjectIDFromHex(*patch.ProjectID)
		if err != nil {
			return nil, domain.Invalid("projectId", "invalid project id")
		}
		task.ProjectID = poid
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("task %q: %w", id, domain.ErrNotFound)
	}
	return s.tasks.Delete(ctx, oid)
}
