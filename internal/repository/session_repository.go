package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"odontobot/internal/model"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("create session failed: %w", err)
	}
	return nil
}

// GetByToken returns nil, nil when the session does not exist.
func (r *SessionRepository) GetByToken(token string) (*model.Session, error) {
	var session model.Session
	if err := r.db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session failed: %w", err)
	}
	return &session, nil
}

// SetLastClarified overwrites the session's last clarified question in a
// single statement. Concurrent requests on the same session are assumed
// not to happen (single browser tab per visitor); last write wins.
func (r *SessionRepository) SetLastClarified(token, question string) error {
	res := r.db.Model(&model.Session{}).Where("token = ?", token).Update("last_clarified", question)
	if res.Error != nil {
		return fmt.Errorf("set last clarified failed: %w", res.Error)
	}
	return nil
}
