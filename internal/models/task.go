package models

import (
	"time"
)

const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

// ValidTaskStatus reports whether s is one of the three board columns.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusTodo || s == TaskStatusDoing || s == TaskStatusDone
}

type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	Project     Project   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project"`
	AssigneeID  *uint     `gorm:"index" json:"assignee_id"` // Nullable, tasks can be unassigned
	Assignee    *User     `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assignee"`
	Status      string    `gorm:"size:10;default:'todo'" json:"status"` // the only mutable field
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
