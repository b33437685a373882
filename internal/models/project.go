package models

import "time"

// Project status is a free-form string ("Planned", "InProgress",
// "Completed" by convention) and is intentionally not validated at the
// boundary, unlike task status/priority.
type Project struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	ClientName string     `gorm:"type:varchar(255);not null" json:"client_name"`
	StartDate  time.Time  `gorm:"not null" json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Status     string     `gorm:"type:varchar(50);not null;default:'Planned'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
