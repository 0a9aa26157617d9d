package app

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odontobot/internal/model"
)

type fakeDocumentStore struct {
	docs   []model.Document
	nextID uint
}

func (f *fakeDocumentStore) Create(doc *model.Document) error {
	f.nextID++
	doc.ID = f.nextID
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeDocumentStore) List() ([]model.Document, error) {
	return f.docs, nil
}

func (f *fakeDocumentStore) GetByID(id uint) (*model.Document, error) {
	for _, d := range f.docs {
		if d.ID == id {
			copied := d
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentStore) DeleteByID(id uint) error {
	kept := f.docs[:0]
	for _, d := range f.docs {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	f.docs = kept
	return nil
}

func TestIngestAssignsSequentialIndexes(t *testing.T) {
	docs := &fakeDocumentStore{}
	fragments := &fakeFragmentStore{}
	svc := NewIngestService(docs, fragments, &fakeEmbedder{}, 60)

	content := strings.Join([]string{
		"El esmalte es la capa externa del diente.",
		"La dentina está debajo del esmalte.",
		"La pulpa contiene los nervios.",
	}, "\n\n")

	result, err := svc.Ingest(context.Background(), IngestInput{Title: "Anatomía", Content: content})
	require.NoError(t, err)
	assert.Equal(t, 3, result.FragmentCount)

	require.Len(t, fragments.fragments, 3)
	for i, frag := range fragments.fragments {
		assert.Equal(t, i+1, frag.Index)
		assert.Equal(t, result.Document.ID, frag.DocumentID)
		assert.NotEmpty(t, frag.Text)
	}
}

func TestIngestStoresUnitVectors(t *testing.T) {
	docs := &fakeDocumentStore{}
	fragments := &fakeFragmentStore{}
	svc := NewIngestService(docs, fragments, &fakeEmbedder{}, 700)

	_, err := svc.Ingest(context.Background(), IngestInput{
		Title:   "Doc",
		Content: "El esmalte es la capa externa del diente.",
	})
	require.NoError(t, err)

	require.Len(t, fragments.fragments, 1)
	vec, err := fragments.fragments[0].Vector()
	require.NoError(t, err)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestIngestRejectsEmptyContent(t *testing.T) {
	docs := &fakeDocumentStore{}
	fragments := &fakeFragmentStore{}
	svc := NewIngestService(docs, fragments, &fakeEmbedder{}, 700)

	_, err := svc.Ingest(context.Background(), IngestInput{Title: "Doc", Content: "  \n\t "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, docs.docs)
	assert.Empty(t, fragments.fragments)
}

func TestIngestEmbeddingFailureWritesNothing(t *testing.T) {
	docs := &fakeDocumentStore{}
	fragments := &fakeFragmentStore{}
	embedder := &fakeEmbedder{err: errors.New("embedding unavailable")}
	svc := NewIngestService(docs, fragments, embedder, 700)

	_, err := svc.Ingest(context.Background(), IngestInput{Title: "Doc", Content: "Texto de prueba."})
	require.Error(t, err)
	assert.Empty(t, docs.docs, "document must not be created when embedding fails")
	assert.Empty(t, fragments.fragments)
}

func TestIngestDefaultsMissingTitle(t *testing.T) {
	docs := &fakeDocumentStore{}
	svc := NewIngestService(docs, &fakeFragmentStore{}, &fakeEmbedder{}, 700)

	result, err := svc.Ingest(context.Background(), IngestInput{Content: "Texto."})
	require.NoError(t, err)
	assert.Equal(t, "Sin título", result.Document.Title)
}

func TestDeleteDocumentCascadesToFragments(t *testing.T) {
	docs := &fakeDocumentStore{}
	fragments := &fakeFragmentStore{}
	svc := NewIngestService(docs, fragments, &fakeEmbedder{}, 700)

	result, err := svc.Ingest(context.Background(), IngestInput{Title: "Doc", Content: "Texto."})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(result.Document.ID))
	assert.Empty(t, docs.docs)
	assert.Empty(t, fragments.fragments)
}

func TestDeleteDocumentUnknownID(t *testing.T) {
	svc := NewIngestService(&fakeDocumentStore{}, &fakeFragmentStore{}, &fakeEmbedder{}, 700)
	assert.ErrorIs(t, svc.DeleteDocument(99), ErrDocumentNotFound)
}

func TestListFragmentsUnknownDocument(t *testing.T) {
	svc := NewIngestService(&fakeDocumentStore{}, &fakeFragmentStore{}, &fakeEmbedder{}, 700)
	_, err := svc.ListFragments(42)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
