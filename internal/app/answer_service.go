package app

import (
	"context"
	"log"
	"strings"
	"time"

	"odontobot/internal/memory"
	"odontobot/internal/model"
	"odontobot/internal/prompt"
	"odontobot/internal/retrieval"
)

// AnswerService runs the question pipeline: rewrite, embed, rank,
// assemble, generate, append. All collaborators are injected; the service
// itself holds no mutable state.
type AnswerService struct {
	sessions  SessionStore
	fragments FragmentStore
	messages  MessageStore
	hits      KeywordHitStore
	publisher AsyncMessagePublisher
	history   HistoryCache
	embedder  Embedder
	generator Generator
	rewriter  *memory.Rewriter

	topK          int
	minScore      float64
	historyWindow int
	grounding     prompt.GroundingConfig
}

type AnswerConfig struct {
	TopK           int
	MinScore       float64
	HistoryWindow  int
	RefusalText    string
	AnswerLanguage string
}

func NewAnswerService(
	sessions SessionStore,
	fragments FragmentStore,
	messages MessageStore,
	hits KeywordHitStore,
	publisher AsyncMessagePublisher,
	history HistoryCache,
	embedder Embedder,
	generator Generator,
	rewriter *memory.Rewriter,
	cfg AnswerConfig,
) *AnswerService {
	if cfg.TopK <= 0 {
		cfg.TopK = 4
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = 6
	}
	return &AnswerService{
		sessions:      sessions,
		fragments:     fragments,
		messages:      messages,
		hits:          hits,
		publisher:     publisher,
		history:       history,
		embedder:      embedder,
		generator:     generator,
		rewriter:      rewriter,
		topK:          cfg.TopK,
		minScore:      cfg.MinScore,
		historyWindow: cfg.HistoryWindow,
		grounding: prompt.GroundingConfig{
			Language:    cfg.AnswerLanguage,
			RefusalText: cfg.RefusalText,
		},
	}
}

type AskInput struct {
	SessionToken string
	Question     string
}

type AskResult struct {
	Answer    string                     `json:"answer"`
	Question  string                     `json:"question"`
	Expanded  string                     `json:"expanded_question,omitempty"`
	Refused   bool                       `json:"refused"`
	Fragments []retrieval.ScoredFragment `json:"fragments,omitempty"`
}

// Ask answers a question strictly from the ingested corpus. When no
// fragment clears the score threshold the configured refusal sentence is
// returned verbatim, without calling the generator. The question reaches
// the history only paired with its answer (real or refusal), never alone.
func (s *AnswerService) Ask(ctx context.Context, input AskInput) (*AskResult, error) {
	question := strings.TrimSpace(input.Question)
	token := strings.TrimSpace(input.SessionToken)
	if question == "" || token == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.sessions.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	retrievalQuery := s.rewrite(session, question)

	queryVec, err := s.embedder.Embed(ctx, retrievalQuery)
	if err != nil {
		return nil, err
	}
	retrieval.Normalize(queryVec)

	candidates, err := s.fragments.FetchAll(session.DocumentID)
	if err != nil {
		return nil, err
	}

	ranked := retrieval.Rank(queryVec, candidates, s.topK, s.minScore)
	if len(ranked) == 0 {
		// Refusal path: no usable context, so the canned sentence goes
		// out as-is and the generator is never invoked.
		if err := s.appendTurn(ctx, token, question, s.grounding.RefusalText); err != nil {
			return nil, err
		}
		return &AskResult{
			Answer:   s.grounding.RefusalText,
			Question: question,
			Expanded: expandedOrEmpty(question, retrievalQuery),
			Refused:  true,
		}, nil
	}

	texts := make([]string, len(ranked))
	for i, r := range ranked {
		texts[i] = r.Fragment.Text
	}
	contextBlock := prompt.AssembleContext(texts)

	window, err := s.messages.ListRecentBySessionToken(token, s.historyWindow)
	if err != nil {
		return nil, err
	}

	promptMessages := prompt.BuildMessages(s.grounding, window, retrievalQuery, contextBlock)
	answer, err := s.generator.Generate(ctx, promptMessages)
	if err != nil {
		return nil, err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = s.grounding.RefusalText
	}

	if err := s.appendTurn(ctx, token, question, answer); err != nil {
		return nil, err
	}

	return &AskResult{
		Answer:    answer,
		Question:  question,
		Expanded:  expandedOrEmpty(question, retrievalQuery),
		Refused:   answer == s.grounding.RefusalText,
		Fragments: ranked,
	}, nil
}

// rewrite applies the conversational-memory policy. Exactly one branch
// applies: a topic-keyword match marks the question clear (and overwrites
// the session's last clarified question), an anaphora match splices in
// the prior context, anything else passes through unchanged.
func (s *AnswerService) rewrite(session *model.Session, question string) string {
	if keyword, ok := s.rewriter.MatchKeyword(question); ok {
		if err := s.sessions.SetLastClarified(session.Token, question); err != nil {
			log.Printf("overwrite last clarified question failed: %v", err)
		}
		if err := s.hits.Create(&model.KeywordHit{
			SessionToken: session.Token,
			Keyword:      keyword,
		}); err != nil {
			log.Printf("record keyword hit failed: %v", err)
		}
		return question
	}
	if s.rewriter.IsFollowUp(question) && session.LastClarified != "" {
		return s.rewriter.Expand(session.LastClarified, question)
	}
	return question
}

// appendTurn enqueues the user question and its reply as one envelope.
// A single publish keeps the pair atomic: either both messages reach the
// queue or neither does. The cache is invalidated first so the next
// history read goes to the database once the worker has drained the
// queue.
func (s *AnswerService) appendTurn(ctx context.Context, token, question, answer string) error {
	if s.history != nil {
		_ = s.history.MarkDirty(ctx, token)
		_ = s.history.DeleteHistory(ctx, token)
	}

	now := time.Now()
	turn := []model.ChatMessage{
		{
			SessionToken: token,
			Role:         model.RoleUser,
			Content:      question,
			CreatedAt:    now,
		},
		{
			SessionToken: token,
			Role:         model.RoleAssistant,
			Content:      answer,
			CreatedAt:    now.Add(time.Millisecond),
		},
	}
	if err := s.publisher.Publish(ctx, turn); err != nil {
		return ErrMessageEnqueue
	}
	return nil
}

// History returns the most recent limit messages of a session's
// conversation in ascending time order, served from the cache when it
// is fresh. The cache always holds the full history; the window is
// applied on the way out, so entries never depend on the caller's
// limit.
func (s *AnswerService) History(ctx context.Context, token string, limit int) ([]model.ChatMessage, error) {
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

	if s.history != nil {
		dirty, err := s.history.IsDirty(ctx, token)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.history.GetHistory(ctx, token); cacheErr == nil && hit {
				return trimMessages(cached, limit), nil
			}
		}
	}

	messages, err := s.messages.ListBySessionToken(token, 0)
	if err != nil {
		return nil, err
	}
	if s.history != nil {
		if dirty, dirtyErr := s.history.IsDirty(ctx, token); dirtyErr == nil && !dirty {
			_ = s.history.SetHistory(ctx, token, messages)
		}
	}
	return trimMessages(messages, limit), nil
}

func trimMessages(messages []model.ChatMessage, limit int) []model.ChatMessage {
	if limit <= 0 || limit >= len(messages) {
		return messages
	}
	return messages[len(messages)-limit:]
}

func expandedOrEmpty(question, retrievalQuery string) string {
	if retrievalQuery == question {
		return ""
	}
	return retrievalQuery
}
