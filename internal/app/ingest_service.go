package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"odontobot/internal/chunker"
	"odontobot/internal/model"
	"odontobot/internal/retrieval"
)

// Embedding APIs commonly cap batch size; send fragments in slices.
const embeddingBatchSize = 10

type IngestService struct {
	docs      DocumentStore
	fragments FragmentStore
	embedder  Embedder
	chunkMax  int
}

func NewIngestService(docs DocumentStore, fragments FragmentStore, embedder Embedder, chunkMaxLength int) *IngestService {
	return &IngestService{
		docs:      docs,
		fragments: fragments,
		embedder:  embedder,
		chunkMax:  chunkMaxLength,
	}
}

type IngestInput struct {
	Title   string
	Content string
}

type IngestResult struct {
	Document      model.Document `json:"document"`
	FragmentCount int            `json:"fragment_count"`
}

// Ingest chunks the cleaned text, embeds each fragment, and persists the
// document with its fragments. Fragment indexes are assigned before the
// embedding calls are dispatched, so they only depend on chunk order.
func (s *IngestService) Ingest(ctx context.Context, input IngestInput) (*IngestResult, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrInvalidInput
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Sin título"
	}

	texts := chunker.Chunk(content, s.chunkMax)
	if len(texts) == 0 {
		return nil, ErrInvalidInput
	}

	fragments := make([]model.Fragment, len(texts))
	for i, text := range texts {
		fragments[i] = model.Fragment{
			Index: i + 1,
			Text:  text,
		}
	}

	for start := 0; start < len(texts); start += embeddingBatchSize {
		end := start + embeddingBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		vectors, err := s.embedder.EmbedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		if len(vectors) != end-start {
			return nil, fmt.Errorf("embedding count mismatch: sent %d, got %d", end-start, len(vectors))
		}
		for i, vec := range vectors {
			fragments[start+i].SetVector(retrieval.Normalize(vec))
		}
	}

	doc := &model.Document{Title: title, RawText: content}
	if err := s.docs.Create(doc); err != nil {
		return nil, err
	}
	for i := range fragments {
		fragments[i].DocumentID = doc.ID
	}
	if err := s.fragments.CreateBatch(fragments); err != nil {
		return nil, err
	}

	log.Printf("document %d (%s) ingested: %d fragments", doc.ID, doc.Title, len(fragments))
	return &IngestResult{
		Document:      *doc,
		FragmentCount: len(fragments),
	}, nil
}

func (s *IngestService) ListDocuments() ([]model.Document, error) {
	return s.docs.List()
}

// ListFragments returns a document's fragments in index order, without
// their embeddings on the wire.
func (s *IngestService) ListFragments(documentID uint) ([]model.Fragment, error) {
	if documentID == 0 {
		return nil, ErrInvalidInput
	}
	doc, err := s.docs.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	return s.fragments.FetchAll(&documentID)
}

// DeleteDocument removes a document and cascades to its fragments.
// Fragments go first so no orphans survive a crash between the deletes.
func (s *IngestService) DeleteDocument(documentID uint) error {
	if documentID == 0 {
		return ErrInvalidInput
	}
	doc, err := s.docs.GetByID(documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}
	if err := s.fragments.DeleteByDocumentID(documentID); err != nil {
		return err
	}
	if err := s.docs.DeleteByID(documentID); err != nil {
		return err
	}
	log.Printf("document %d (%s) deleted", doc.ID, doc.Title)
	return nil
}
