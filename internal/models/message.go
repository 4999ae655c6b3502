package models

import (
	"time"
)

// Message is one entry in a project's chat log. Append-only, never
// edited or deleted.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SenderID  uint      `gorm:"not null;index" json:"sender_id"`
	Sender    User      `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sender"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Project   Project   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project"`
	CreatedAt time.Time `json:"created_at"`
}
