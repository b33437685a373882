package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/controltask/controltask-api/internal/models"
)

// openTestDB creates an in-memory SQLite database with the schema migrated
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Developer{}, &models.Project{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createDeveloper(t *testing.T, db *gorm.DB, firstName, lastName string, active bool) *models.Developer {
	t.Helper()

	dev := &models.Developer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     firstName + "." + lastName + "@example.com",
		IsActive:  active,
	}
	if err := db.Create(dev).Error; err != nil {
		t.Fatalf("failed to create developer: %v", err)
	}
	return dev
}

func createProject(t *testing.T, db *gorm.DB, name, client string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:       name,
		ClientName: client,
		StartDate:  time.Now().AddDate(0, -1, 0),
		Status:     "InProgress",
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

// taskSpec describes a fixture task; zero values fall back to sensible defaults
type taskSpec struct {
	Title          string
	Status         models.TaskStatus
	Priority       models.TaskPriority
	Complexity     *int
	DueDate        *time.Time
	CompletionDate *time.Time
}

func createTask(t *testing.T, db *gorm.DB, projectID, assigneeID uint64, spec taskSpec) *models.Task {
	t.Helper()

	if spec.Title == "" {
		spec.Title = "Test Task"
	}
	if spec.Status == "" {
		spec.Status = models.TaskStatusToDo
	}
	if spec.Priority == "" {
		spec.Priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		ProjectID:           projectID,
		Title:               spec.Title,
		AssigneeID:          assigneeID,
		Status:              spec.Status,
		Priority:            spec.Priority,
		EstimatedComplexity: spec.Complexity,
		DueDate:             spec.DueDate,
		CompletionDate:      spec.CompletionDate,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}

func intPtr(v int) *int {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}
