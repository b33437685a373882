package models

import "time"

type Developer struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:AssigneeID" json:"tasks,omitempty"`
}

// FullName returns "First Last" as rendered in dashboard reports.
func (d Developer) FullName() string {
	return d.FirstName + " " + d.LastName
}
