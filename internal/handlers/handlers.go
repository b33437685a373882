package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/controltask/controltask-api/internal/errors"
	"github.com/controltask/controltask-api/internal/services"
)

// handleServiceError maps service-layer sentinel errors to HTTP
// responses. Anything unrecognized is logged and surfaced as a generic
// internal error without leaking detail to the caller.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrDeveloperNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidComplexity),
		errors.Is(err, services.ErrDueDateInPast),
		errors.Is(err, services.ErrAssigneeNotActive),
		errors.Is(err, services.ErrTaskTitleRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProjectHasTasks),
		errors.Is(err, services.ErrDeveloperHasTasks):
		apierrors.Conflict(c, err.Error())
	default:
		log.Printf("internal error: %v", err)
		apierrors.InternalError(c, "")
	}
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
