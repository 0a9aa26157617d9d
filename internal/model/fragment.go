package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrMalformedEmbedding is returned when a stored embedding cannot be parsed
// into a numeric vector. Callers exclude such fragments from ranking instead
// of failing the whole query.
var ErrMalformedEmbedding = errors.New("malformed embedding")

// Fragment is an indexed slice of a document's text, the unit of retrieval.
// Index is 1-based and unique within a document; fragments are never
// reordered after creation. Embedding is stored as JSON array of float32.
type Fragment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DocumentID uint      `gorm:"not null;index;uniqueIndex:idx_doc_frag,priority:1" json:"document_id"`
	Index      int       `gorm:"column:frag_index;not null;uniqueIndex:idx_doc_frag,priority:2" json:"index"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Embedding  string    `gorm:"type:text" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Vector parses the stored embedding. This is the single deserialization
// boundary for all representations the store has ever held: a JSON array,
// a JSON string wrapping an array, or the brace-delimited legacy form
// "{0.1,0.2}" which is normalized to brackets before parsing.
func (f *Fragment) Vector() ([]float32, error) {
	raw := strings.TrimSpace(f.Embedding)
	if raw == "" {
		return nil, ErrMalformedEmbedding
	}

	// Legacy rows store the vector as a JSON string; unquote first.
	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err != nil {
			return nil, ErrMalformedEmbedding
		}
		raw = strings.TrimSpace(inner)
	}

	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		raw = "[" + raw[1:len(raw)-1] + "]"
	}

	var vec []float32
	if err := json.Unmarshal([]byte(raw), &vec); err != nil {
		return nil, ErrMalformedEmbedding
	}
	if len(vec) == 0 {
		return nil, ErrMalformedEmbedding
	}
	return vec, nil
}

// SetVector stores the embedding as a JSON array.
func (f *Fragment) SetVector(vec []float32) {
	if len(vec) == 0 {
		f.Embedding = "[]"
		return
	}
	b, _ := json.Marshal(vec)
	f.Embedding = string(b)
}
