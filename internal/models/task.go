package models

import "time"

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "ToDo"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Valid reports whether the status is one of the four known values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusBlocked, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// Valid reports whether the priority is one of the three known values.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID                  uint64       `gorm:"primarykey" json:"id"`
	ProjectID           uint64       `gorm:"not null;index" json:"project_id"`
	Title               string       `gorm:"not null" json:"title"`
	Description         *string      `gorm:"type:text" json:"description"`
	AssigneeID          uint64       `gorm:"not null;index" json:"assignee_id"`
	Status              TaskStatus   `gorm:"type:varchar(20);not null;default:'ToDo';index" json:"status"`
	Priority            TaskPriority `gorm:"type:varchar(20);not null;default:'Medium'" json:"priority"`
	EstimatedComplexity *int         `json:"estimated_complexity"`
	DueDate             *time.Time   `gorm:"index" json:"due_date"`
	CompletionDate      *time.Time   `json:"completion_date"`
	CreatedAt           time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`

	// Relations. Deleting a referenced project or developer is
	// restricted, never cascaded.
	Project  Project   `gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT" json:"project,omitempty"`
	Assignee Developer `gorm:"foreignKey:AssigneeID;constraint:OnDelete:RESTRICT" json:"assignee,omitempty"`
}

// IsOpen reports whether the task counts toward open-task metrics.
func (t Task) IsOpen() bool {
	return t.Status != TaskStatusCompleted
}
