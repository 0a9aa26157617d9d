package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"odontobot/internal/model"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) Create(user *model.AdminUser) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create admin user failed: %w", err)
	}
	return nil
}

// GetByUsername returns nil, nil when no such admin exists.
func (r *AdminUserRepository) GetByUsername(username string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin user failed: %w", err)
	}
	return &user, nil
}
