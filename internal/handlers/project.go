package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/controltask/controltask-api/internal/dto"
	apierrors "github.com/controltask/controltask-api/internal/errors"
	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/services"
	"github.com/controltask/controltask-api/internal/utils"
)

type ProjectHandler struct {
	projectService   *services.ProjectService
	dashboardService *services.DashboardService
}

func NewProjectHandler(projectService *services.ProjectService, dashboardService *services.DashboardService) *ProjectHandler {
	return &ProjectHandler{
		projectService:   projectService,
		dashboardService: dashboardService,
	}
}

type projectRequest struct {
	Name       string     `json:"name" binding:"required"`
	ClientName string     `json:"clientName" binding:"required"`
	StartDate  time.Time  `json:"startDate" binding:"required"`
	EndDate    *time.Time `json:"endDate"`
	Status     string     `json:"status"`
}

// ListProjects returns all projects with task-count stats
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// GetProject returns a project by ID with task-count stats
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project := models.Project{
		Name:       req.Name,
		ClientName: req.ClientName,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     req.Status,
	}

	if err := h.projectService.CreateProject(&project); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(project))
}

// UpdateProject updates an existing project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	project.Name = req.Name
	project.ClientName = req.ClientName
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	if req.Status != "" {
		project.Status = req.Status
	}

	if err := h.projectService.UpdateProject(project); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject deletes a project; 409 if tasks still reference it
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProjectTasks returns one page of a project's tasks, filtered by
// optional ?status= and ?assigneeId=
func (h *ProjectHandler) GetProjectTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params, err := utils.GetPaginationParams(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	status, assigneeID, ok := parseTaskFilters(c)
	if !ok {
		return
	}

	tasks, total, err := h.projectService.GetProjectTasksPaged(id, params, status, assigneeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPagedTasksDTO(tasks, params.Page, params.Limit, total))
}

// GetAllProjectTasks returns all of a project's tasks, unpaged
func (h *ProjectHandler) GetAllProjectTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	status, assigneeID, ok := parseTaskFilters(c)
	if !ok {
		return
	}

	tasks, err := h.projectService.GetProjectTasks(id, status, assigneeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetProjectHealth returns task-count stats per project
func (h *ProjectHandler) GetProjectHealth(c *gin.Context) {
	reports, err := h.dashboardService.ProjectHealth()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// parseTaskFilters validates the optional ?status= and ?assigneeId=
// query parameters for task listings
func parseTaskFilters(c *gin.Context) (*models.TaskStatus, *uint64, bool) {
	var status *models.TaskStatus
	if raw := c.Query("status"); raw != "" {
		s := models.TaskStatus(raw)
		if !s.Valid() {
			apierrors.BadRequest(c, "status must be one of: ToDo, InProgress, Blocked, Completed")
			return nil, nil, false
		}
		status = &s
	}

	var assigneeID *uint64
	if raw := c.Query("assigneeId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "invalid assigneeId")
			return nil, nil, false
		}
		assigneeID = &id
	}

	return status, assigneeID, true
}
