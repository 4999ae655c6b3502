package models

import (
	"time"
)

const (
	VisibilityPublic      = "public"
	VisibilityCollegeOnly = "college_only"
	VisibilityPrivate     = "private"
)

const (
	ProjectRoleOwner  = "owner"
	ProjectRoleMember = "member"
)

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`
	Visibility  string    `gorm:"size:20;default:'public'" json:"visibility"` // public, college_only, private
	Tags        string    `json:"tags"`                                      // comma-separated
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Computed at query time
	MemberCount int            `gorm:"-" json:"member_count"`
	TaskCounts  map[string]int `gorm:"-" json:"task_counts"`
}

// ProjectMember links a user to a project. The owner gets a row with
// role "owner" at project creation.
type ProjectMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index;uniqueIndex:idx_project_user" json:"project_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_project_user" json:"user_id"`
	Role      string    `gorm:"size:20;default:'member'" json:"role"`
	CreatedAt time.Time `json:"joined_at"`
}
