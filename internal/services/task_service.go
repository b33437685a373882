package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/controltask/controltask-api/internal/constants"
	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/repository"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrAssigneeNotActive = errors.New("assignee does not exist or is not active")
	ErrInvalidStatus     = errors.New("status must be one of: ToDo, InProgress, Blocked, Completed")
	ErrInvalidPriority   = errors.New("priority must be one of: Low, Medium, High")
	ErrInvalidComplexity = errors.New("estimatedComplexity must be between 1 and 5")
	ErrDueDateInPast     = errors.New("dueDate cannot be in the past")
	ErrTaskTitleRequired = errors.New("title is required")
)

// TaskService handles the task lifecycle: validated creation, validated
// status/priority/complexity transitions with completion-date
// bookkeeping, and deletion.
type TaskService struct {
	taskRepo      repository.TaskRepository
	projectRepo   repository.ProjectRepository
	developerRepo repository.DeveloperRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	developerRepo repository.DeveloperRepository,
) *TaskService {
	return &TaskService{
		taskRepo:      taskRepo,
		projectRepo:   projectRepo,
		developerRepo: developerRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ProjectID           uint64
	Title               string
	Description         *string
	AssigneeID          uint64
	Status              models.TaskStatus
	Priority            models.TaskPriority
	EstimatedComplexity *int
	DueDate             *time.Time
}

// UpdateTaskStatusInput represents a partial update of a task's status,
// priority and estimated complexity. Nil fields are left untouched.
type UpdateTaskStatusInput struct {
	Status              *models.TaskStatus
	Priority            *models.TaskPriority
	EstimatedComplexity *int
}

// GetTask returns a task with its project and assignee loaded
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "Project", "Assignee")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask validates and persists a new task. Preconditions are
// checked in order: project exists, assignee exists and is active,
// status, priority, complexity range, due date not in the past.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTaskTitleRequired
	}

	exists, err := s.projectRepo.Exists(input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	if !exists {
		return nil, ErrProjectNotFound
	}

	assignee, err := s.developerRepo.FindByID(input.AssigneeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeNotActive
		}
		return nil, fmt.Errorf("failed to verify assignee: %w", err)
	}
	if !assignee.IsActive {
		return nil, ErrAssigneeNotActive
	}

	if input.Status == "" {
		input.Status = models.TaskStatusToDo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	if err := validateComplexity(input.EstimatedComplexity); err != nil {
		return nil, err
	}

	if input.DueDate != nil && input.DueDate.Before(time.Now()) {
		return nil, ErrDueDateInPast
	}

	task := &models.Task{
		ProjectID:           input.ProjectID,
		Title:               input.Title,
		Description:         input.Description,
		AssigneeID:          input.AssigneeID,
		Status:              input.Status,
		Priority:            input.Priority,
		EstimatedComplexity: input.EstimatedComplexity,
		DueDate:             input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Project", "Assignee")
}

// UpdateTaskStatus applies a validated partial update. Entering
// Completed stamps the completion date; leaving Completed clears it.
func (s *TaskService) UpdateTaskStatus(id uint64, input UpdateTaskStatusInput) (*models.Task, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if err := validateComplexity(input.EstimatedComplexity); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	previousStatus := task.Status

	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.EstimatedComplexity != nil {
		task.EstimatedComplexity = input.EstimatedComplexity
	}

	if task.Status == models.TaskStatusCompleted && previousStatus != models.TaskStatusCompleted {
		now := time.Now()
		task.CompletionDate = &now
	} else if task.Status != models.TaskStatusCompleted && previousStatus == models.TaskStatusCompleted {
		task.CompletionDate = nil
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "Project", "Assignee")
}

// DeleteTask hard deletes a task
func (s *TaskService) DeleteTask(id uint64) error {
	exists, err := s.taskRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to verify task: %w", err)
	}
	if !exists {
		return ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// GetTasksByAssignee returns a developer's tasks, newest first
func (s *TaskService) GetTasksByAssignee(assigneeID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByAssignee(assigneeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func validateComplexity(complexity *int) error {
	if complexity == nil {
		return nil
	}
	if *complexity < constants.MinEstimatedComplexity || *complexity > constants.MaxEstimatedComplexity {
		return ErrInvalidComplexity
	}
	return nil
}
