package model

import "time"

// KeywordHit records a topic keyword detected in a user question. The clinic
// reviews these to decide which FAQs to write.
type KeywordHit struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SessionToken string    `gorm:"size:64;not null;index" json:"session_token"`
	Keyword      string    `gorm:"size:128;not null" json:"keyword"`
	CreatedAt    time.Time `json:"created_at"`
}
