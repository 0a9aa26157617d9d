package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a session's conversation. Append-only;
// ordering is by CreatedAt ascending.
type ChatMessage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SessionToken string    `gorm:"size:64;not null;index" json:"session_token"`
	Role         string    `gorm:"size:16;not null" json:"role"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
