package app

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"odontobot/internal/model"
)

type SessionService struct {
	sessions SessionStore
	docs     DocumentStore
}

func NewSessionService(sessions SessionStore, docs DocumentStore) *SessionService {
	return &SessionService{sessions: sessions, docs: docs}
}

// Create opens an anonymous session. A non-nil documentID scopes every
// retrieval in the session to that document.
func (s *SessionService) Create(documentID *uint) (*model.Session, error) {
	if documentID != nil {
		doc, err := s.docs.GetByID(*documentID)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, ErrDocumentNotFound
		}
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}
	session := &model.Session{
		Token:      token,
		DocumentID: documentID,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func newSessionToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token failed: %w", err)
	}
	return hex.EncodeToString(b), nil
}
