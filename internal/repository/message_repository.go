package repository

import (
	"fmt"

	"gorm.io/gorm"

	"odontobot/internal/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// CreateBatch inserts one turn's messages in a single transaction, so a
// failure mid-turn commits nothing.
func (r *MessageRepository) CreateBatch(messages []model.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if err := r.db.Create(&messages).Error; err != nil {
		return fmt.Errorf("create chat messages failed: %w", err)
	}
	return nil
}

// ListBySessionToken returns a session's messages in ascending time
// order. A positive limit keeps only the most recent limit messages;
// limit <= 0 returns the full history.
func (r *MessageRepository) ListBySessionToken(token string, limit int) ([]model.ChatMessage, error) {
	if limit > 0 {
		return r.ListRecentBySessionToken(token, limit)
	}
	var messages []model.ChatMessage
	if err := r.db.Where("session_token = ?", token).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list chat messages failed: %w", err)
	}
	return messages, nil
}

// ListRecentBySessionToken returns the most recent limit messages, still
// in ascending time order, for prompt-context injection.
func (r *MessageRepository) ListRecentBySessionToken(token string, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		return nil, nil
	}
	var messages []model.ChatMessage
	if err := r.db.Where("session_token = ?", token).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list recent chat messages failed: %w", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
