package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
	"github.com/eslsoft/deepgloss/pkg/textseg"
	"github.com/samber/lo"
)

const _defaultSemanticTopK = 5

// RetrieverUsecase produces a single canonical context sentence for a term by
// combining confirmed links, exact substring search and, only when exact
// search comes up empty, semantic recall.
type RetrieverUsecase interface {
	// FindContext returns the canonical candidate, or nil when no context
	// exists. Semantic index failures degrade to "no candidates" and are
	// never surfaced as errors.
	FindContext(ctx context.Context, termID, domainID int64, word string) (*entity.Candidate, error)
}

type retrieverUsecase struct {
	sentences repository.SentenceRepository
	matches   repository.MatchRepository
	vector    repository.VectorIndex
	topK      int
}

// NewRetrieverUsecase wires the hybrid retriever. topK bounds semantic
// recall; values <= 0 fall back to the default.
func NewRetrieverUsecase(
	sentences repository.SentenceRepository,
	matches repository.MatchRepository,
	vector repository.VectorIndex,
	topK int,
) RetrieverUsecase {
	if topK <= 0 {
		topK = _defaultSemanticTopK
	}
	return &retrieverUsecase{
		sentences: sentences,
		matches:   matches,
		vector:    vector,
		topK:      topK,
	}
}

func (u *retrieverUsecase) FindContext(ctx context.Context, termID, domainID int64, word string) (*entity.Candidate, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, entity.ErrInvalidTermWord
	}

	// Confirmed associations always participate, regardless of search
	// results.
	linked, err := u.matches.SentencesForTerm(ctx, termID)
	if err != nil {
		return nil, err
	}
	candidates := lo.Map(linked, func(s entity.Sentence, _ int) entity.Candidate {
		return entity.CandidateFromSentence(s, true)
	})

	exact, err := u.sentences.SearchByText(ctx, domainID, word)
	if err != nil {
		return nil, err
	}

	if len(exact) > 0 {
		// Exact search is authoritative: the semantic index is not consulted.
		for _, s := range exact {
			candidates = append(candidates, entity.CandidateFromSentence(s, false))
		}
	} else {
		for i, text := range u.vector.Query(ctx, domainID, word, u.topK) {
			candidates = append(candidates, entity.VirtualCandidate(domainID, i, text))
		}
	}

	return selectCanonical(dedupCandidates(candidates)), nil
}

// dedupCandidates keeps the first occurrence per sentence id. Linked entries
// come first in the slice, so they win ties by construction.
func dedupCandidates(candidates []entity.Candidate) []entity.Candidate {
	return lo.UniqBy(candidates, func(c entity.Candidate) int64 {
		return c.SentenceID
	})
}

// selectCanonical picks the candidate with the greatest character length of
// its English content. Ties break to the first seen. Nil when empty.
func selectCanonical(candidates []entity.Candidate) *entity.Candidate {
	var best *entity.Candidate
	bestLen := -1
	for i := range candidates {
		if l := textseg.Length(candidates[i].ContentEN); l > bestLen {
			best = &candidates[i]
			bestLen = l
		}
	}
	return best
}
