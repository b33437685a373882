package dto

import (
	"time"

	"github.com/controltask/controltask-api/internal/models"
)

// ProjectDTO represents a project in API responses, with task-count stats
type ProjectDTO struct {
	ID             uint64     `json:"projectId"`
	Name           string     `json:"name"`
	ClientName     string     `json:"clientName"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Status         string     `json:"status"`
	TotalTasks     int        `json:"totalTasks"`
	OpenTasks      int        `json:"openTasks"`
	CompletedTasks int        `json:"completedTasks"`
}

// ToProjectDTO converts a Project model to ProjectDTO. Task counts are
// computed from the preloaded Tasks relation.
func ToProjectDTO(project models.Project) ProjectDTO {
	open := 0
	for _, t := range project.Tasks {
		if t.IsOpen() {
			open++
		}
	}

	return ProjectDTO{
		ID:             project.ID,
		Name:           project.Name,
		ClientName:     project.ClientName,
		StartDate:      project.StartDate,
		EndDate:        project.EndDate,
		Status:         project.Status,
		TotalTasks:     len(project.Tasks),
		OpenTasks:      open,
		CompletedTasks: len(project.Tasks) - open,
	}
}

// ToProjectDTOs converts a slice of Project models to ProjectDTOs
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
