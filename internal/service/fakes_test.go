package service

import (
	"context"
	"time"

	"taskboard/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores for service tests. They mirror the repository contracts:
// domain.ErrNotFound for misses, domain.ErrEmailTaken for duplicates, ids
// and timestamps assigned on insert.

type memUserStore struct {
	byEmail map[string]*domain.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: make(map[string]*domain.User)}
}

func (s *memUserStore) Insert(_ context.Context, u *domain.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	s.byEmail[u.Email] = u
	return nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

type memProjectStore struct {
	projects map[primitive.ObjectID]*domain.Project
	ops      *[]string
}

func newMemProjectStore(ops *[]string) *memProjectStore {
	return &memProjectStore{projects: make(map[primitive.ObjectID]*domain.Project), ops: ops}
}

func (s *memProjectStore) Insert(_ context.Context, p *domain.Project) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	s.projects[p.ID] = p
	return nil
}

func (s *memProjectStore) List(_ context.Context) ([]*domain.Project, error) {
	res := []*domain.Project{}
	for _, p := range s.projects {
		res = append(res, p)
	}
	return res, nil
}

func (s *memProjectStore) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *memProjectStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.projects, id)
	if s.ops != nil {
		*s.ops = append(*s.ops, "delete project")
	}
	return nil
}

type memTaskStore struct {
	tasks map[primitive.ObjectID]*domain.Task
	ops   *[]string
}

func newMemTaskStore(ops *[]string) *memTaskStore {
	return &memTaskStore{tasks: make(map[primitive.ObjectID]*domain.Task), ops: ops}
}

func (s *memTaskStore) Insert(_ context.Context, t *domain.Task) error {
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	s.tasks[t.ID] = t
	return nil
}

func (s *memTaskStore) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *memTaskStore) ListByProject(_ context.Context, projectID primitive.ObjectID) ([]*domain.Task, error) {
	res := []*domain.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			res = append(res, t)
		}
	}
	return res, nil
}

func (s *memTaskStore) Update(_ context.Context, t *domain.Task) error {
	if _, ok := s.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	t.UpdatedAt = time.Now().UTC()
	s.tasks[t.ID] = t
	return nil
}

func (s *memTaskStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *memTaskStore) DeleteByProject(_ context.Context, projectID primitive.ObjectID) (int64, error) {
	var n int64
	for id, t := range s.tasks {
		if t.ProjectID == projectID {
			delete(s.tasks, id)
			n++
		}
	}
	if s.ops != nil {
		*s.ops = append(*s.ops, "delete tasks")
	}
	return n, nil
}
