package repository

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

func seedDeveloper(t *testing.T, db *gorm.DB, email string) *models.Developer {
	t.Helper()

	dev := &models.Developer{
		FirstName: "Test",
		LastName:  "Dev",
		Email:     email,
		IsActive:  true,
	}
	if err := db.Create(dev).Error; err != nil {
		t.Fatalf("failed to seed developer: %v", err)
	}
	return dev
}

func seedProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:       name,
		ClientName: "Acme",
		StartDate:  time.Now().AddDate(0, -1, 0),
		Status:     "InProgress",
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return project
}

func seedTask(t *testing.T, db *gorm.DB, task *models.Task) *models.Task {
	t.Helper()

	if task.Title == "" {
		task.Title = "Seed Task"
	}
	if task.Status == "" {
		task.Status = models.TaskStatusToDo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}
