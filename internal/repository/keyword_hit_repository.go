package repository

import (
	"fmt"

	"gorm.io/gorm"

	"odontobot/internal/model"
)

type KeywordHitRepository struct {
	db *gorm.DB
}

func NewKeywordHitRepository(db *gorm.DB) *KeywordHitRepository {
	return &KeywordHitRepository{db: db}
}

func (r *KeywordHitRepository) Create(hit *model.KeywordHit) error {
	if err := r.db.Create(hit).Error; err != nil {
		return fmt.Errorf("create keyword hit failed: %w", err)
	}
	return nil
}

func (r *KeywordHitRepository) ListBySessionToken(token string) ([]model.KeywordHit, error) {
	var hits []model.KeywordHit
	if err := r.db.Where("session_token = ?", token).Order("created_at DESC").Find(&hits).Error; err != nil {
		return nil, fmt.Errorf("list keyword hits failed: %w", err)
	}
	return hits, nil
}
