package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/repository"
)

var (
	ErrDeveloperNotFound = errors.New("developer not found")
	ErrDeveloperHasTasks = errors.New("developer is referenced by tasks and cannot be deleted")
)

// DeveloperService handles developer reads and CRUD.
type DeveloperService struct {
	developerRepo repository.DeveloperRepository
}

// NewDeveloperService creates a new DeveloperService
func NewDeveloperService(developerRepo repository.DeveloperRepository) *DeveloperService {
	return &DeveloperService{developerRepo: developerRepo}
}

// ListActiveDevelopers returns all active developers
func (s *DeveloperService) ListActiveDevelopers() ([]models.Developer, error) {
	devs, err := s.developerRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list developers: %w", err)
	}
	return devs, nil
}

// GetDeveloper returns an active developer by ID. Inactive developers
// are reported as not found, matching the read surface of the dashboard.
func (s *DeveloperService) GetDeveloper(id uint64) (*models.Developer, error) {
	dev, err := s.developerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("failed to find developer: %w", err)
	}
	if !dev.IsActive {
		return nil, ErrDeveloperNotFound
	}
	return dev, nil
}

// CreateDeveloper persists a new developer
func (s *DeveloperService) CreateDeveloper(dev *models.Developer) error {
	if err := s.developerRepo.Create(dev); err != nil {
		return fmt.Errorf("failed to create developer: %w", err)
	}
	return nil
}

// UpdateDeveloper updates an existing developer
func (s *DeveloperService) UpdateDeveloper(dev *models.Developer) error {
	exists, err := s.developerRepo.Exists(dev.ID)
	if err != nil {
		return fmt.Errorf("failed to verify developer: %w", err)
	}
	if !exists {
		return ErrDeveloperNotFound
	}

	if err := s.developerRepo.Update(dev); err != nil {
		return fmt.Errorf("failed to update developer: %w", err)
	}
	return nil
}

// DeleteDeveloper deletes a developer unless tasks still reference them
func (s *DeveloperService) DeleteDeveloper(id uint64) error {
	exists, err := s.developerRepo.Exists(id)
	if err != nil {
		return fmt.Errorf("failed to verify developer: %w", err)
	}
	if !exists {
		return ErrDeveloperNotFound
	}

	taskCount, err := s.developerRepo.CountTasks(id)
	if err != nil {
		return fmt.Errorf("failed to count developer tasks: %w", err)
	}
	if taskCount > 0 {
		return ErrDeveloperHasTasks
	}

	if err := s.developerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete developer: %w", err)
	}
	return nil
}
