package usecase

import (
	"context"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
)

// ReconcileUsecase promotes virtual (vector-only) candidates into durable
// sentence rows and records the confirmed term association.
type ReconcileUsecase interface {
	// Confirm resolves the candidate to a relational sentence id (adopting an
	// existing row with identical content, inserting a new one otherwise),
	// records the match, and applies the user field edits when any is
	// non-empty. Safe to call repeatedly.
	Confirm(ctx context.Context, termID, domainID int64, candidate entity.Candidate, fields entity.SentenceUpdate) (int64, error)
}

type reconcileUsecase struct {
	sentences repository.SentenceRepository
	matches   repository.MatchRepository
}

// NewReconcileUsecase wires the reconciliation manager.
func NewReconcileUsecase(sentences repository.SentenceRepository, matches repository.MatchRepository) ReconcileUsecase {
	return &reconcileUsecase{sentences: sentences, matches: matches}
}

func (u *reconcileUsecase) Confirm(ctx context.Context, termID, domainID int64, candidate entity.Candidate, fields entity.SentenceUpdate) (int64, error) {
	if candidate.ContentEN == "" {
		return 0, entity.ErrInvalidCandidate
	}

	sentenceID := candidate.SentenceID
	if !candidate.Relational() {
		// Bridge by raw content equality: the same sentence indexed into the
		// vector store and typed manually into the relational store resolves
		// to one row.
		existing, err := u.sentences.FindByContent(ctx, candidate.ContentEN)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			sentenceID = existing.ID
		} else {
			// Add self-heals the check-then-insert race: a concurrent
			// promotion of the same text yields the winner's id.
			sentenceID, err = u.sentences.Add(ctx, domainID, candidate.ContentEN)
			if err != nil {
				return 0, err
			}
		}
	}

	if err := u.matches.Add(ctx, termID, sentenceID); err != nil {
		return 0, err
	}

	if fields = pruneEmptyFields(fields); !fields.Empty() {
		if err := u.sentences.Update(ctx, sentenceID, fields); err != nil {
			return 0, err
		}
	}

	return sentenceID, nil
}

// pruneEmptyFields drops blank edits so existing data is never clobbered
// with empty strings.
func pruneEmptyFields(fields entity.SentenceUpdate) entity.SentenceUpdate {
	if fields.ContentCN != nil && *fields.ContentCN == "" {
		fields.ContentCN = nil
	}
	if fields.AudioRef != nil && *fields.AudioRef == "" {
		fields.AudioRef = nil
	}
	if fields.CNExplanation != nil && *fields.CNExplanation == "" {
		fields.CNExplanation = nil
	}
	return fields
}
