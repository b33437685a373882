package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/controltask/controltask-api/internal/dto"
	apierrors "github.com/controltask/controltask-api/internal/errors"
	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/services"
)

type DeveloperHandler struct {
	developerService *services.DeveloperService
	dashboardService *services.DashboardService
}

func NewDeveloperHandler(developerService *services.DeveloperService, dashboardService *services.DashboardService) *DeveloperHandler {
	return &DeveloperHandler{
		developerService: developerService,
		dashboardService: dashboardService,
	}
}

type developerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	IsActive  *bool  `json:"isActive"`
}

// ListDevelopers returns all active developers
func (h *DeveloperHandler) ListDevelopers(c *gin.Context) {
	devs, err := h.developerService.ListActiveDevelopers()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDeveloperDTOs(devs))
}

// GetDeveloper returns an active developer by ID
func (h *DeveloperHandler) GetDeveloper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dev, err := h.developerService.GetDeveloper(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDeveloperDTO(*dev))
}

// GetDeveloperWorkload returns open-task count and average estimated
// complexity per active developer
func (h *DeveloperHandler) GetDeveloperWorkload(c *gin.Context) {
	reports, err := h.dashboardService.DeveloperWorkload()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// CreateDeveloper creates a new developer
func (h *DeveloperHandler) CreateDeveloper(c *gin.Context) {
	var req developerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dev := models.Developer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsActive:  true,
	}
	if req.IsActive != nil {
		dev.IsActive = *req.IsActive
	}

	if err := h.developerService.CreateDeveloper(&dev); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDeveloperDTO(dev))
}

// UpdateDeveloper updates an existing developer
func (h *DeveloperHandler) UpdateDeveloper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req developerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dev, err := h.developerService.GetDeveloper(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	dev.FirstName = req.FirstName
	dev.LastName = req.LastName
	dev.Email = req.Email
	if req.IsActive != nil {
		dev.IsActive = *req.IsActive
	}

	if err := h.developerService.UpdateDeveloper(dev); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeveloperDTO(*dev))
}

// DeleteDeveloper deletes a developer; 409 if tasks still reference them
func (h *DeveloperHandler) DeleteDeveloper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.developerService.DeleteDeveloper(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
