package models

import (
	"time"
)

type Subgroup struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;unique" json:"name"`
	Description string    `json:"description"`
	Icon        string    `gorm:"size:20" json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Computed from the membership and post tables at query time
	MemberCount int  `gorm:"-" json:"member_count"`
	PostCount   int  `gorm:"-" json:"post_count"`
	IsJoined    bool `gorm:"-" json:"is_joined"`
}

// SubgroupMember links a user to a subgroup they joined.
type SubgroupMember struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_user_subgroup" json:"user_id"`
	SubgroupID uint      `gorm:"not null;index;uniqueIndex:idx_user_subgroup" json:"subgroup_id"`
	CreatedAt  time.Time `json:"joined_at"`
}
