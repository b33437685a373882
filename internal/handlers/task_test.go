package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controltask/controltask-api/internal/dto"
	apierrors "github.com/controltask/controltask-api/internal/errors"
	"github.com/controltask/controltask-api/internal/models"
)

func TestTaskHandler_CreateTask(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	project := createTestProject(t, env.db, "API")

	due := time.Now().AddDate(0, 0, 5).UTC().Format(time.RFC3339)
	body, err := json.Marshal(map[string]interface{}{
		"projectId":           project.ID,
		"title":               "Ship the thing",
		"assigneeId":          dev.ID,
		"priority":            "High",
		"estimatedComplexity": 3,
		"dueDate":             due,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/tasks", body)
	env.taskHandler.CreateTask(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotZero(t, response.ID)
	assert.Equal(t, "Ship the thing", response.Title)
	assert.Equal(t, models.TaskStatusToDo, response.Status)
	assert.Equal(t, models.TaskPriorityHigh, response.Priority)
	assert.Equal(t, "API", response.ProjectName)
	assert.Equal(t, "John Doe", response.AssigneeName)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	project := createTestProject(t, env.db, "API")

	body, err := json.Marshal(map[string]interface{}{
		"projectId":  project.ID,
		"assigneeId": dev.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/tasks", body)
	env.taskHandler.CreateTask(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeInvalidInput, decodeAPIError(t, w).Code)
}

func TestTaskHandler_CreateTask_UnknownProject(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)

	body, err := json.Marshal(map[string]interface{}{
		"projectId":  999,
		"title":      "Orphan",
		"assigneeId": dev.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/tasks", body)
	env.taskHandler.CreateTask(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeAPIError(t, w).Code)
}

func TestTaskHandler_CreateTask_InactiveAssignee(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "Gone", "Dev", false)
	project := createTestProject(t, env.db, "API")

	body, err := json.Marshal(map[string]interface{}{
		"projectId":  project.ID,
		"title":      "Unassignable",
		"assigneeId": dev.ID,
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/tasks", body)
	env.taskHandler.CreateTask(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_CreateTask_PastDueDate(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	project := createTestProject(t, env.db, "API")

	body, err := json.Marshal(map[string]interface{}{
		"projectId":  project.ID,
		"title":      "Too late",
		"assigneeId": dev.ID,
		"dueDate":    time.Now().AddDate(0, 0, -3).UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/tasks", body)
	env.taskHandler.CreateTask(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_GetTask(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	project := createTestProject(t, env.db, "API")
	task := createTestTask(t, env.db, project.ID, dev.ID, models.TaskStatusToDo)

	c, w := testContext(http.MethodGet, "/api/tasks/1", nil)
	setPathParam(c, "id", strconv.FormatUint(task.ID, 10))
	env.taskHandler.GetTask(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, task.ID, response.ID)
	assert.Equal(t, "API", response.ProjectName)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := testContext(http.MethodGet, "/api/tasks/999", nil)
	setPathParam(c, "id", "999")
	env.taskHandler.GetTask(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := testContext(http.MethodGet, "/api/tasks/abc", nil)
	setPathParam(c, "id", "abc")
	env.taskHandler.GetTask(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_UpdateTaskStatus_Completes(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	project := createTestProject(t, env.db, "API")
	task := createTestTask(t, env.db, project.ID, dev.ID, models.TaskStatusInProgress)

	body, err := json.Marshal(map[string]string{"status": "Completed"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPut, "/api/tasks/1/status", body)
	setPathParam(c, "id", strconv.FormatUint(task.ID, 10))
	env.taskHandler.UpdateTaskStatus(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.TaskStatusCompleted, response.Status)
	assert.NotNil(t, response.CompletionDate)
}

func TestTaskHandler_UpdateTaskStatus_InvalidStatus(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	project := createTestProject(t, env.db, "API")
	task := createTestTask(t, env.db, project.ID, dev.ID, models.TaskStatusToDo)

	body, err := json.Marshal(map[string]string{"status": "Done"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPut, "/api/tasks/1/status", body)
	setPathParam(c, "id", strconv.FormatUint(task.ID, 10))
	env.taskHandler.UpdateTaskStatus(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeInvalidInput, decodeAPIError(t, w).Code)
}

func TestTaskHandler_UpdateTaskStatus_NotFound(t *testing.T) {
	env := setupHandlerTestEnv(t)

	body, err := json.Marshal(map[string]string{"status": "Completed"})
	require.NoError(t, err)

	c, w := testContext(http.MethodPut, "/api/tasks/999/status", body)
	setPathParam(c, "id", "999")
	env.taskHandler.UpdateTaskStatus(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	project := createTestProject(t, env.db, "API")
	task := createTestTask(t, env.db, project.ID, dev.ID, models.TaskStatusToDo)

	c, w := testContext(http.MethodDelete, "/api/tasks/1", nil)
	setPathParam(c, "id", strconv.FormatUint(task.ID, 10))
	env.taskHandler.DeleteTask(c)

	// c.Status defers the write until the engine flushes headers
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	env := setupHandlerTestEnv(t)

	c, w := testContext(http.MethodDelete, "/api/tasks/999", nil)
	setPathParam(c, "id", "999")
	env.taskHandler.DeleteTask(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_GetTasksByAssignee(t *testing.T) {
	env := setupHandlerTestEnv(t)

	dev := createTestDeveloper(t, env.db, "John", "Doe", true)
	other := createTestDeveloper(t, env.db, "Jane", "Roe", true)
	project := createTestProject(t, env.db, "API")
	createTestTask(t, env.db, project.ID, dev.ID, models.TaskStatusToDo)
	createTestTask(t, env.db, project.ID, other.ID, models.TaskStatusToDo)

	c, w := testContext(http.MethodGet, "/api/tasks/assignee/1", nil)
	setPathParam(c, "assigneeId", strconv.FormatUint(dev.ID, 10))
	env.taskHandler.GetTasksByAssignee(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response []dto.TaskDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, dev.ID, response[0].AssigneeID)
}
