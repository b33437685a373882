package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/controltask/controltask-api/internal/constants"
	apierrors "github.com/controltask/controltask-api/internal/errors"
	"github.com/controltask/controltask-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDeveloperWorkload returns open-task count and average estimated
// complexity per active developer
func (h *DashboardHandler) GetDeveloperWorkload(c *gin.Context) {
	reports, err := h.dashboardService.DeveloperWorkload()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetProjectHealth returns task-count stats per project
func (h *DashboardHandler) GetProjectHealth(c *gin.Context) {
	reports, err := h.dashboardService.ProjectHealth()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetDeveloperDelayRisk returns the delay-risk prediction per active
// developer, high-risk first
func (h *DashboardHandler) GetDeveloperDelayRisk(c *gin.Context) {
	reports, err := h.dashboardService.DeveloperDelayRisk()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetUpcomingTasks returns open tasks due within ?days=N (1-30, default 7)
func (h *DashboardHandler) GetUpcomingTasks(c *gin.Context) {
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

// parseUpcomingDays validates the ?days query parameter shared by the
// dashboard and task upcoming endpoints
func parseUpcomingDays(c *gin.Context) (int, bool) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(constants.DefaultUpcomingDays)))
	if err != nil || days < constants.MinUpcomingDays || days > constants.MaxUpcomingDays {
		apierrors.BadRequest(c, "days must be between 1 and 30")
		return 0, false
	}
	return days, true
}
