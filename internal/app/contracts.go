package app

import (
	"context"

	"odontobot/internal/ai"
	"odontobot/internal/model"
)

// Collaborator contracts consumed by the services. Production wiring uses
// the gorm repositories, the redis cache, the rabbitmq publisher, and the
// OpenAI-compatible client; tests substitute fakes.

type DocumentStore interface {
	Create(doc *model.Document) error
	List() ([]model.Document, error)
	GetByID(id uint) (*model.Document, error)
	DeleteByID(id uint) error
}

type FragmentStore interface {
	CreateBatch(fragments []model.Fragment) error
	FetchAll(documentID *uint) ([]model.Fragment, error)
	DeleteByDocumentID(documentID uint) error
}

type SessionStore interface {
	Create(session *model.Session) error
	GetByToken(token string) (*model.Session, error)
	SetLastClarified(token, question string) error
}

type MessageStore interface {
	ListBySessionToken(token string, limit int) ([]model.ChatMessage, error)
	ListRecentBySessionToken(token string, limit int) ([]model.ChatMessage, error)
}

type KeywordHitStore interface {
	Create(hit *model.KeywordHit) error
	ListBySessionToken(token string) ([]model.KeywordHit, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type Generator interface {
	Generate(ctx context.Context, messages []ai.ChatMessage) (string, error)
}

type AsyncMessagePublisher interface {
	Publish(ctx context.Context, msgs []model.ChatMessage) error
}

type HistoryCache interface {
	GetHistory(ctx context.Context, token string) ([]model.ChatMessage, bool, error)
	SetHistory(ctx context.Context, token string, messages []model.ChatMessage) error
	DeleteHistory(ctx context.Context, token string) error
	MarkDirty(ctx context.Context, token string) error
	IsDirty(ctx context.Context, token string) (bool, error)
}
