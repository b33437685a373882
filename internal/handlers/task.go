package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/controltask/controltask-api/internal/dto"
	apierrors "github.com/controltask/controltask-api/internal/errors"
	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/services"
)

type TaskHandler struct {
	taskService      *services.TaskService
	dashboardService *services.DashboardService
}

func NewTaskHandler(taskService *services.TaskService, dashboardService *services.DashboardService) *TaskHandler {
	return &TaskHandler{
		taskService:      taskService,
		dashboardService: dashboardService,
	}
}

// GetTask returns a task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task after validating its references,
// status, priority, complexity and due date
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		ProjectID           uint64     `json:"projectId" binding:"required"`
		Title               string     `json:"title" binding:"required"`
		Description         *string    `json:"description"`
		AssigneeID          uint64     `json:"assigneeId" binding:"required"`
		Status              string     `json:"status"`
		Priority            string     `json:"priority"`
		EstimatedComplexity *int       `json:"estimatedComplexity"`
		DueDate             *time.Time `json:"dueDate"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		ProjectID:           req.ProjectID,
		Title:               req.Title,
		Description:         req.Description,
		AssigneeID:          req.AssigneeID,
		Status:              models.TaskStatus(req.Status),
		Priority:            models.TaskPriority(req.Priority),
		EstimatedComplexity: req.EstimatedComplexity,
		DueDate:             req.DueDate,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTaskStatus partially updates a task's status, priority and
// estimated complexity. Absent fields are left untouched.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateTaskStatusRequest struct {
		Status              *string `json:"status"`
		Priority            *string `json:"priority"`
		EstimatedComplexity *int    `json:"estimatedComplexity"`
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateTaskStatusInput{
		EstimatedComplexity: req.EstimatedComplexity,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	task, err := h.taskService.UpdateTaskStatus(id, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask hard deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUpcomingTasks returns open tasks due within ?days=N (1-30, default 7)
func (h *TaskHandler) GetUpcomingTasks(c *gin.Context) {
	days, ok := parseUpcomingDays(c)
	if !ok {
		return
	}

	reports, err := h.dashboardService.UpcomingTasks(days)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetTasksByAssignee returns a developer's tasks, newest first
func (h *TaskHandler) GetTasksByAssignee(c *gin.Context) {
	assigneeID, ok := parseIDParam(c, "assigneeId")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasksByAssignee(assigneeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}
