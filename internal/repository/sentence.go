package repository

import (
	"context"

	"github.com/eslsoft/deepgloss/internal/entity"
)

// SentenceRepository defines data access for context sentences.
//
// Sentence content is unique globally, not per domain: Add and UpsertAudio
// resolve content conflicts by adopting the existing row regardless of which
// domain first stored it.
type SentenceRepository interface {
	// Add inserts the sentence, or returns the id of the existing row when
	// identical content is already stored.
	Add(ctx context.Context, domainID int64, content string) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Sentence, error)
	// FindByContent returns nil (no error) when no row matches exactly.
	FindByContent(ctx context.Context, content string) (*entity.Sentence, error)
	// SearchByText performs a case-insensitive substring match scoped to the
	// domain. Rows come back in storage order.
	SearchByText(ctx context.Context, domainID int64, termText string) ([]entity.Sentence, error)
	ListByDomain(ctx context.Context, domainID int64) ([]entity.Sentence, error)
	// Update applies the non-nil fields of the update only.
	Update(ctx context.Context, id int64, update entity.SentenceUpdate) error
	// UpsertAudio inserts the sentence with an audio reference, or refreshes
	// the audio reference of the existing row on content conflict.
	UpsertAudio(ctx context.Context, domainID int64, content, audioRef string) error
}
