package repository

import (
	"gorm.io/gorm"

	"github.com/controltask/controltask-api/internal/models"
)

// GormDeveloperRepository is a GORM implementation of DeveloperRepository
type GormDeveloperRepository struct {
	db *gorm.DB
}

// NewDeveloperRepository creates a new DeveloperRepository
func NewDeveloperRepository(db *gorm.DB) DeveloperRepository {
	return &GormDeveloperRepository{db: db}
}

// Create creates a new developer
func (r *GormDeveloperRepository) Create(dev *models.Developer) error {
	return r.db.Create(dev).Error
}

// FindByID finds a developer by ID
func (r *GormDeveloperRepository) FindByID(id uint64) (*models.Developer, error) {
	var dev models.Developer
	if err := r.db.First(&dev, id).Error; err != nil {
		return nil, err
	}
	return &dev, nil
}

// ListActive lists all active developers
func (r *GormDeveloperRepository) ListActive() ([]models.Developer, error) {
	var devs []models.Developer
	if err := r.db.Where("is_active = ?", true).Order("id").Find(&devs).Error; err != nil {
		return nil, err
	}
	return devs, nil
}

// ListActiveWithTasks lists active developers with their tasks preloaded
func (r *GormDeveloperRepository) ListActiveWithTasks() ([]models.Developer, error) {
	var devs []models.Developer
	if err := r.db.
		Preload("Tasks").
		Where("is_active = ?", true).
		Order("id").
		Find(&devs).Error; err != nil {
		return nil, err
	}
	return devs, nil
}

// Update updates a developer
func (r *GormDeveloperRepository) Update(dev *models.Developer) error {
	return r.db.Save(dev).Error
}

// Delete hard deletes a developer
func (r *GormDeveloperRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Developer{}, id).Error
}

// Exists reports whether a developer with the given ID exists
func (r *GormDeveloperRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Developer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the total number of developers
func (r *GormDeveloperRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Developer{}).Count(&count).Error
	return count, err
}

// CountTasks counts tasks referencing the developer as assignee
func (r *GormDeveloperRepository) CountTasks(developerID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("assignee_id = ?", developerID).Count(&count).Error
	return count, err
}
