package app

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"odontobot/internal/model"
	"odontobot/internal/pkg/jwtutil"
	"odontobot/internal/repository"
)

// AuthService logs clinic admins in. There is no self-registration;
// admins are provisioned directly in the database.
type AuthService struct {
	admins        *repository.AdminUserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(admins *repository.AdminUserRepository, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		admins:        admins,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string           `json:"token"`
	Admin *model.AdminUser `json:"admin"`
}

func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	admin, err := s.admins.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, admin.ID, admin.Username, s.jwtExpiration)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Admin: admin}, nil
}
