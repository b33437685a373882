package dto

import (
	"time"

	"github.com/controltask/controltask-api/internal/models"
)

// TaskDTO represents a task in API responses, enriched with the project
// name and assignee full name when those relations are preloaded.
type TaskDTO struct {
	ID                  uint64              `json:"taskId"`
	ProjectID           uint64              `json:"projectId"`
	ProjectName         string              `json:"projectName"`
	Title               string              `json:"title"`
	Description         *string             `json:"description"`
	AssigneeID          uint64              `json:"assigneeId"`
	AssigneeName        string              `json:"assigneeName"`
	Status              models.TaskStatus   `json:"status"`
	Priority            models.TaskPriority `json:"priority"`
	EstimatedComplexity *int                `json:"estimatedComplexity"`
	DueDate             *time.Time          `json:"dueDate"`
	CompletionDate      *time.Time          `json:"completionDate"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// PagedTasksDTO represents a page of a project's tasks
type PagedTasksDTO struct {
	Items      []TaskDTO `json:"items"`
	TotalCount int64     `json:"totalCount"`
	PageNumber int       `json:"pageNumber"`
	PageSize   int       `json:"pageSize"`
}

// UpcomingTaskDTO represents a task due within the requested window
type UpcomingTaskDTO struct {
	Title        string              `json:"title"`
	ProjectName  string              `json:"projectName"`
	AssignedTo   string              `json:"assignedTo"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      time.Time           `json:"dueDate"`
	DaysUntilDue int                 `json:"daysUntilDue"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:                  task.ID,
		ProjectID:           task.ProjectID,
		Title:               task.Title,
		Description:         task.Description,
		AssigneeID:          task.AssigneeID,
		Status:              task.Status,
		Priority:            task.Priority,
		EstimatedComplexity: task.EstimatedComplexity,
		DueDate:             task.DueDate,
		CompletionDate:      task.CompletionDate,
		CreatedAt:           task.CreatedAt,
	}

	// Names are filled only when the relations were preloaded
	if task.Project.ID != 0 {
		dto.ProjectName = task.Project.Name
	}
	if task.Assignee.ID != 0 {
		dto.AssigneeName = task.Assignee.FullName()
	}

	return dto
}

// ToTaskDTOs converts a slice of Task models to TaskDTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToPagedTasksDTO assembles a page of task DTOs with paging metadata
func ToPagedTasksDTO(tasks []models.Task, page, pageSize int, totalCount int64) PagedTasksDTO {
	return PagedTasksDTO{
		Items:      ToTaskDTOs(tasks),
		TotalCount: totalCount,
		PageNumber: page,
		PageSize:   pageSize,
	}
}
