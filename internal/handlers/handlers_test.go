package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/controltask/controltask-api/internal/database"
	apierrors "github.com/controltask/controltask-api/internal/errors"
	"github.com/controltask/controltask-api/internal/models"
	"github.com/controltask/controltask-api/internal/repository"
	"github.com/controltask/controltask-api/internal/services"
)

// handlerTestEnv wires the full handler stack over an in-memory database
type handlerTestEnv struct {
	db               *gorm.DB
	taskHandler      *TaskHandler
	projectHandler   *ProjectHandler
	developerHandler *DeveloperHandler
	dashboardHandler *DashboardHandler
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Developer{}, &models.Project{}, &models.Task{})
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	developerRepo := repository.NewDeveloperRepository(db)

	dashboardService := services.NewDashboardService(taskRepo, developerRepo, projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, developerRepo)
	projectService := services.NewProjectService(projectRepo, taskRepo)
	developerService := services.NewDeveloperService(developerRepo)

	return handlerTestEnv{
		db:               db,
		taskHandler:      NewTaskHandler(taskService, dashboardService),
		projectHandler:   NewProjectHandler(projectService, dashboardService),
		developerHandler: NewDeveloperHandler(developerService, dashboardService),
		dashboardHandler: NewDashboardHandler(dashboardService),
	}
}

// testContext builds a gin context around an httptest recorder
func testContext(method, url string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func setPathParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func createTestDeveloper(t *testing.T, db *gorm.DB, firstName, lastName string, active bool) *models.Developer {
	t.Helper()

	dev := &models.Developer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     firstName + "." + lastName + "@example.com",
		IsActive:  active,
	}
	require.NoError(t, db.Create(dev).Error)
	return dev
}

func createTestProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:       name,
		ClientName: "Acme",
		StartDate:  time.Now().AddDate(0, -1, 0),
		Status:     "InProgress",
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createTestTask(t *testing.T, db *gorm.DB, projectID, assigneeID uint64, status models.TaskStatus) *models.Task {
	t.Helper()

	task := &models.Task{
		ProjectID:  projectID,
		Title:      "Test Task",
		AssigneeID: assigneeID,
		Status:     status,
		Priority:   models.TaskPriorityMedium,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}
