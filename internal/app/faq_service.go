package app

import (
	"strings"

	"odontobot/internal/model"
)

// FAQService exposes the keyword detections the answer pipeline records.
// The clinic reads them to decide which FAQ entries to write.
type FAQService struct {
	hits     KeywordHitStore
	sessions SessionStore
}

func NewFAQService(hits KeywordHitStore, sessions SessionStore) *FAQService {
	return &FAQService{hits: hits, sessions: sessions}
}

func (s *FAQService) ListDetections(token string) ([]model.KeywordHit, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidInput
	}
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.hits.ListBySessionToken(token)
}
