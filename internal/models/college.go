package models

import (
	"time"
)

type College struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;unique" json:"name"`
	Domain    string    `json:"domain"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Computed at query time from users affiliated by college name
	StudentCount int `gorm:"-" json:"student_count"`
	ProjectCount int `gorm:"-" json:"project_count"`
}
