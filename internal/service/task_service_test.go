package service

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateTaskDefaultsToTodo(t *testing.T) {
	svc := NewTaskService(newMemTaskStore(nil))

	task, err := svc.Create(context.Background(), "Design", "mockups", primitive.NewObjectID().Hex(), "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != domain.StatusTodo {
		t.Fatalf("expected default status Todo, got %q", task.Status)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc := NewTaskService(newMemTaskStore(nil))
	ctx := context.Background()
	pid := primitive.NewObjectID().Hex()

	cases := []struct {
		name                              string
		title, projectID, status          string
	}{
		{"missing title", "", pid, ""},
		{"missing projectId", "Design", "", ""},
		{"malformed projectId", "Design", "p1", ""},
		{"bad status", "Design", pid, "Blocked"},
		{"case-sensitive status", "Design", pid, "todo"},
	}
	for _, tc := range cases {
		var ve *domain.ValidationError
		_, err := svc.Create(ctx, tc.title, "", tc.projectID, tc.status)
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestListByProjectEmptyIsNotAnError(t *testing.T) {
	svc := NewTaskService(newMemTaskStore(nil))

	tasks, err := svc.ListByProject(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", tasks)
	}
}

func TestUpdateTask(t *testing.T) {
	svc := NewTaskService(newMemTaskStore(nil))
	ctx := context.Background()

	task, err := svc.Create(ctx, "Design", "", primitive.NewObjectID().Hex(), "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "Done"
	title := "Design v2"
	updated, err := svc.Update(ctx, task.ID.Hex(), TaskPatch{Title: &title, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Design v2" || updated.Status != domain.StatusDone {
		t.Fatalf("patch not applied: %+v", updated)
	}

	// statuses are unordered: Done may go back to Todo
	back := "Todo"
	if _, err := svc.Update(ctx, task.ID.Hex(), TaskPatch{Status: &back}); err != nil {
		t.Fatalf("status transition back: %v", err)
	}

	bad := "Cancelled"
	var ve *domain.ValidationError
	if _, err := svc.Update(ctx, task.ID.Hex(), TaskPatch{Status: &bad}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad status, got %v", err)
	}

	empty := " "
	if _, err := svc.Update(ctx, task.ID.Hex(), TaskPatch{Title: &empty}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for blank title, got %v", err)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc := NewTaskService(newMemTaskStore(nil))

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), TaskPatch{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = svc.Update(context.Background(), "t1", TaskPatch{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc := NewTaskService(newMemTaskStore(nil))
	ctx := context.Background()

	task, err := svc.Create(ctx, "Design", "", primitive.NewObjectID().Hex(), "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, task.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, task.ID.Hex()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
