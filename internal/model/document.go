package model

import "time"

// Document is an ingested clinic document. Immutable once created;
// re-uploading supersedes it, nothing edits RawText in place.
type Document struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:256;not null" json:"title"`
	RawText   string    `gorm:"type:longtext;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
