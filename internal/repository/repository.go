package repository

import (
	"time"

	"github.com/controltask/controltask-api/internal/models"
)

// TaskFilter holds filtering options for listing a project's tasks
type TaskFilter struct {
	ProjectID  uint64
	Status     *models.TaskStatus
	AssigneeID *uint64
	Page       int
	PageSize   int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByProject retrieves a project's tasks with filtering and
	// pagination, newest first. Page/PageSize of 0 disables paging.
	ListByProject(filter TaskFilter) ([]models.Task, int64, error)

	// ListByAssignee retrieves all tasks assigned to a developer, newest first
	ListByAssignee(assigneeID uint64) ([]models.Task, error)

	// ListUpcoming retrieves open tasks whose due date falls in
	// [from, to), ordered by due date ascending
	ListUpcoming(from, to time.Time) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete hard deletes a task
	Delete(id uint64) error

	// Exists reports whether a task with the given ID exists
	Exists(id uint64) (bool, error)

	// Count returns the total number of tasks
	Count() (int64, error)
}

// DeveloperRepository defines the interface for developer data access
type DeveloperRepository interface {
	// Create creates a new developer
	Create(dev *models.Developer) error

	// FindByID finds a developer by ID
	FindByID(id uint64) (*models.Developer, error)

	// ListActive lists all active developers
	ListActive() ([]models.Developer, error)

	// ListActiveWithTasks lists active developers with their tasks preloaded
	ListActiveWithTasks() ([]models.Developer, error)

	// Update updates a developer
	Update(dev *models.Developer) error

	// Delete hard deletes a developer
	Delete(id uint64) error

	// Exists reports whether a developer with the given ID exists
	Exists(id uint64) (bool, error)

	// Count returns the total number of developers
	Count() (int64, error)

	// CountTasks counts tasks referencing the developer as assignee
	CountTasks(developerID uint64) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindByIDWithTasks finds a project with its tasks preloaded
	FindByIDWithTasks(id uint64) (*models.Project, error)

	// ListWithTasks lists all projects with their tasks preloaded
	ListWithTasks() ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete hard deletes a project
	Delete(id uint64) error

	// Exists reports whether a project with the given ID exists
	Exists(id uint64) (bool, error)

	// Count returns the total number of projects
	Count() (int64, error)

	// CountTasks counts tasks belonging to the project
	CountTasks(projectID uint64) (int64, error)
}
