package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/controltask/controltask-api/internal/constants"
)

var (
	ErrInvalidPage     = errors.New("page must be greater than 0")
	ErrInvalidPageSize = errors.New("pageSize must be between 1 and 100")
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from
// the request. Out-of-range values are rejected, not clamped.
func GetPaginationParams(c *gin.Context) (PaginationParams, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil || page < constants.DefaultPage {
		return PaginationParams{}, ErrInvalidPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || limit < constants.MinPageSize || limit > constants.MaxPageSize {
		return PaginationParams{}, ErrInvalidPageSize
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}, nil
}
