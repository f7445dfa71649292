package http

import (
	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *config.Config, version string) {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	h := handlers.NewHandler(
		service.NewUserService(userRepo),
		service.NewProjectService(projectRepo, taskRepo),
		service.NewTaskService(taskRepo),
	)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.Use(middleware.Metrics())
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	RegisterAPIRoutes(api, h, cfg)
}

// RegisterAPIRoutes wires the resource routes onto an existing group.
func RegisterAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	// Credential endpoints get a tighter window
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)

	users := api.Group("/users")
	{
		users.POST("/register", authRL, h.Register)
		users.POST("/login", authRL, h.Login)
		users.POST("/logout", h.Logout)
	}

	projects := api.Group("/projects")
	projects.Use(middleware.JWT())
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.DELETE("/:id", h.DeleteProject)
	}

	tasks := api.Group("/tasks")
	tasks.Use(middleware.JWT())
	{
		tasks.GET("/project/:projectId", h.ListTasksByProject)
		tasks.POST("", h.CreateTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
