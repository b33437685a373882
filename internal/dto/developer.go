package dto

import "github.com/controltask/controltask-api/internal/models"

// DeveloperDTO represents a developer in API responses
type DeveloperDTO struct {
	ID       uint64 `json:"developerId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

// ToDeveloperDTO converts a Developer model to DeveloperDTO
func ToDeveloperDTO(dev models.Developer) DeveloperDTO {
	return DeveloperDTO{
		ID:       dev.ID,
		FullName: dev.FullName(),
		Email:    dev.Email,
		IsActive: dev.IsActive,
	}
}

// ToDeveloperDTOs converts a slice of Developer models to DeveloperDTOs
func ToDeveloperDTOs(devs []models.Developer) []DeveloperDTO {
	dtos := make([]DeveloperDTO, len(devs))
	for i, dev := range devs {
		dtos[i] = ToDeveloperDTO(dev)
	}
	return dtos
}
