package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/repository"
	"github.com/controltask/controltask-api/internal/utils"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectHasTasks = errors.New("project has tasks and cannot be deleted")
)

// ProjectService handles project reads with task stats, project CRUD,
// and the paged/filtered project task listing.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// ListProjects returns all projects with their tasks loaded for stats
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.ListWithTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project with its tasks loaded
func (s *ProjectService) GetProject(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByIDWithTasks(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProject persists a new project. Project status is free-form and
// deliberately not validated here.
func (s *ProjectService) CreateProject(project *models.Project) error {
	if project.Status == "" {
		project.Status = "Planned"
	}
	if err := s.projectRepo.Create(project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// UpdateProject updates an existing project
func (s *ProjectService) UpdateProject(project *models.Project) error {
	exists, err := s.projectRepo.Exists(project.ID)
	if err != nil {
		return fmt.Errorf("failed to verify project: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}

	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteProject deletes a project unless tasks still reference it
func (s *ProjectService) DeleteProject(id uint64) error {
	exists, err := s.projectRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to verify project: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}

	taskCount, err := s.projectRepo.CountTasks(id)
	if err != nil {
		return fmt.Errorf("failed to count project tasks: %w", err)
	}
	if taskCount > 0 {
		return ErrProjectHasTasks
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// GetProjectTasksPaged returns one page of a project's tasks, optionally
// filtered by status and assignee, newest first
func (s *ProjectService) GetProjectTasksPaged(
	projectID uint64,
	params utils.PaginationParams,
	status *models.TaskStatus,
	assigneeID *uint64,
) ([]models.Task, int64, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to verify project: %w", err)
	}
	if !exists {
		return nil, 0, ErrProjectNotFound
	}

	tasks, total, err := s.taskRepo.ListByProject(repository.TaskFilter{
		ProjectID:  projectID,
		Status:     status,
		AssigneeID: assigneeID,
		Page:       params.Page,
		PageSize:   params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list project tasks: %w", err)
	}

	return tasks, total, nil
}

// GetProjectTasks returns all of a project's tasks, optionally filtered,
// newest first
func (s *ProjectService) GetProjectTasks(
	projectID uint64,
	status *models.TaskStatus,
	assigneeID *uint64,
) ([]models.Task, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	tasks, _, err := s.taskRepo.ListByProject(repository.TaskFilter{
		ProjectID:  projectID,
		Status:     status,
		AssigneeID: assigneeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}

	return tasks, nil
}
