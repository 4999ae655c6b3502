package models

import (
	"time"
)

const (
	PostTypeDiscussion = "discussion"
	PostTypeQuestion   = "question"
	PostTypeResource   = "resource"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	SubgroupID uint      `gorm:"not null;index" json:"subgroup_id"`
	Subgroup   Subgroup  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"subgroup"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	PostType   string    `gorm:"size:20;default:'discussion'" json:"post_type"`
	Upvotes    int       `gorm:"default:0" json:"upvotes"`
	Downvotes  int       `gorm:"default:0" json:"downvotes"`
	Score      int       `gorm:"default:0;index" json:"score"` // popularity rank, maintained by services.RankingService
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Filled at query time, not stored
	CommentCount int `gorm:"-" json:"comment_count"`
}
