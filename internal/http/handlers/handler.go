package handlers

import (
	"taskboard/internal/service"
)

type Handler struct {
	Users    *service.UserService
	Projects *service.ProjectService
	Tasks    *service.TaskService
}

func NewHandler(users *service.UserService, projects *service.ProjectService, tasks *service.TaskService) *Handler {
	return &Handler{
		Users:    users,
		Projects: projects,
		Tasks:    tasks,
	}
}
