package repository

import (
	"context"

	"github.com/eslsoft/deepgloss/internal/entity"
)

// TermRepository defines data access for term entries.
type TermRepository interface {
	// Add inserts the term unless a case-insensitive duplicate of the word
	// already exists in the same domain, in which case the existing id is
	// returned unchanged.
	Add(ctx context.Context, term *entity.Term) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Term, error)
	ListByDomain(ctx context.Context, domainID int64, onlyActive bool) ([]entity.Term, error)
	// Update applies the non-nil fields of the update only.
	Update(ctx context.Context, id int64, update entity.TermUpdate) error
	// BulkUpdate rewrites word, definition, star level and active flag for
	// each given term by id.
	BulkUpdate(ctx context.Context, terms []entity.Term) error
}
