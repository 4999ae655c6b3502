package models

import (
	"time"
)

const (
	VoteUp   = 1
	VoteDown = -1
)

// PostVote is the per-user vote ledger. One row per (post, user); the
// unique index is what makes repeated votes idempotent.
type PostVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_post_user_vote" json:"post_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_post_user_vote" json:"user_id"`
	Value     int       `gorm:"not null" json:"value"` // VoteUp or VoteDown
	CreatedAt time.Time `json:"created_at"`
}
