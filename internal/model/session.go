package model

import "time"

// Session is an anonymous chat session identified by an opaque token.
// DocumentID, when non-nil, scopes retrieval to a single document;
// nil means corpus-wide retrieval. LastClarified holds the most recent
// self-contained question and is overwritten, never appended.
type Session struct {
	Token         string    `gorm:"primaryKey;size:64" json:"token"`
	DocumentID    *uint     `gorm:"index" json:"document_id,omitempty"`
	LastClarified string    `gorm:"type:text" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
