package repository

import (
	"fmt"

	"gorm.io/gorm"

	"odontobot/internal/model"
)

type FragmentRepository struct {
	db *gorm.DB
}

func NewFragmentRepository(db *gorm.DB) *FragmentRepository {
	return &FragmentRepository{db: db}
}

func (r *FragmentRepository) CreateBatch(fragments []model.Fragment) error {
	if len(fragments) == 0 {
		return nil
	}
	if err := r.db.Create(&fragments).Error; err != nil {
		return fmt.Errorf("create fragments batch failed: %w", err)
	}
	return nil
}

// FetchAll returns fragments for one document when documentID is non-nil,
// otherwise the full corpus. Ordered by document and fragment index so
// ranking ties break deterministically.
func (r *FragmentRepository) FetchAll(documentID *uint) ([]model.Fragment, error) {
	q := r.db.Order("document_id ASC, frag_index ASC")
	if documentID != nil {
		q = q.Where("document_id = ?", *documentID)
	}
	var fragments []model.Fragment
	if err := q.Find(&fragments).Error; err != nil {
		return nil, fmt.Errorf("fetch fragments failed: %w", err)
	}
	return fragments, nil
}

// DeleteByDocumentID removes a document's fragments; called before the
// owning document is deleted so no orphans remain.
func (r *FragmentRepository) DeleteByDocumentID(documentID uint) error {
	if err := r.db.Where("document_id = ?", documentID).Delete(&model.Fragment{}).Error; err != nil {
		return fmt.Errorf("delete fragments by document failed: %w", err)
	}
	return nil
}
