package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/controltask/controltask-api/internal/config"
	"github.com/controltask/controltask-api/internal/database"
	"github.com/controltask/controltask-api/internal/handlers"
	"github.com/controltask/controltask-api/internal/repository"
	"github.com/controltask/controltask-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	developerRepo := repository.NewDeveloperRepository(db)

	// Initialize services
	dashboardService := services.NewDashboardService(taskRepo, developerRepo, projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, developerRepo)
	projectService := services.NewProjectService(projectRepo, taskRepo)
	developerService := services.NewDeveloperService(developerRepo)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	taskHandler := handlers.NewTaskHandler(taskService, dashboardService)
	projectHandler := handlers.NewProjectHandler(projectService, dashboardService)
	developerHandler := handlers.NewDeveloperHandler(developerService, dashboardService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "ControlTask API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/developer-workload", dashboardHandler.GetDeveloperWorkload)
			dashboard.GET("/project-health", dashboardHandler.GetProjectHealth)
			dashboard.GET("/developer-delay-risk", dashboardHandler.GetDeveloperDelayRisk)
			dashboard.GET("/upcoming-tasks", dashboardHandler.GetUpcomingTasks)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/upcoming", taskHandler.GetUpcomingTasks)
			tasks.GET("/assignee/:assigneeId", taskHandler.GetTasksByAssignee)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/health", projectHandler.GetProjectHealth)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/tasks", projectHandler.GetProjectTasks)
			projects.GET("/:id/tasks/all", projectHandler.GetAllProjectTasks)
		}

		developers := api.Group("/developers")
		{
			developers.GET("", developerHandler.ListDevelopers)
			developers.POST("", developerHandler.CreateDeveloper)
			developers.GET("/workload", developerHandler.GetDeveloperWorkload)
			developers.GET("/:id", developerHandler.GetDeveloper)
			developers.PUT("/:id", developerHandler.UpdateDeveloper)
			developers.DELETE("/:id", developerHandler.DeleteDeveloper)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
