package models

import (
	"time"
)

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"` // Hash
	CollegeName      string    `gorm:"index" json:"college_name"`
	IsStudent        bool      `gorm:"not null;default:true" json:"is_student"`
	Role             string    `gorm:"size:20;default:'student';not null" json:"role"` // student, admin
	Skills           string    `json:"skills"`                                         // comma-separated
	GithubProfile    string    `json:"github_profile"`
	ProfileCompleted bool      `gorm:"default:false" json:"profile_completed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	// No DeletedAt, accounts are never hard-deleted
}
