package repository

import (
	"gorm.io/gorm"

	"github.com/controltask/controltask-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDWithTasks finds a project with its tasks preloaded
func (r *GormProjectRepository) FindByIDWithTasks(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Tasks").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListWithTasks lists all projects with their tasks preloaded
func (r *GormProjectRepository) ListWithTasks() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("Tasks").Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete hard deletes a project
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// Exists reports whether a project with the given ID exists
func (r *GormProjectRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of projects
func (r *GormProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// CountTasks counts tasks belonging to the project
func (r *GormProjectRepository) CountTasks(projectID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
