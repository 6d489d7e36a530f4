package repository

import (
	"context"

	"github.com/eslsoft/deepgloss/internal/entity"
)

// MatchRepository defines data access for confirmed term-sentence links.
type MatchRepository interface {
	// Add records the pair once. Re-adding an existing pair is a no-op, and a
	// concurrent duplicate insert is tolerated, never surfaced.
	Add(ctx context.Context, termID, sentenceID int64) error
	// SentencesForTerm returns the confirmed sentences for a term via join.
	SentencesForTerm(ctx context.Context, termID int64) ([]entity.Sentence, error)
}
