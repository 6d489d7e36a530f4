package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
)

// Explainer translates a context sentence and explains a term's usage in it.
type Explainer interface {
	ExplainTermInContext(ctx context.Context, term, contextSentence string) entity.TermExplanation
}

// Speaker returns a stable audio reference for spoken text. An empty
// reference means synthesis was unavailable.
type Speaker interface {
	AudioRef(ctx context.Context, text string) string
}

// ImageFinder returns up to count illustration URLs for a query.
type ImageFinder interface {
	URLs(ctx context.Context, query string, count int) []string
}

// EnrichUsecase decorates stored terms and sentences with translations,
// audio and illustrations from external services. Upstream failures degrade
// to empty values; they never fail the operation.
type EnrichUsecase interface {
	Explain(ctx context.Context, term, contextSentence string) entity.TermExplanation
	// SpeakTerm generates audio for the term's word and persists the
	// reference. An empty reference is returned (and nothing persisted) when
	// synthesis is unavailable.
	SpeakTerm(ctx context.Context, termID int64) (string, error)
	// SpeakText generates audio for arbitrary text without persisting.
	SpeakText(ctx context.Context, text string) string
	// IllustrateTerm fetches up to count image URLs for the term's word and
	// persists them.
	IllustrateTerm(ctx context.Context, termID int64, count int) ([]string, error)
}

type enrichUsecase struct {
	terms     repository.TermRepository
	explainer Explainer
	speaker   Speaker
	images    ImageFinder
}

// NewEnrichUsecase wires the enrichment layer.
func NewEnrichUsecase(
	terms repository.TermRepository,
	explainer Explainer,
	speaker Speaker,
	images ImageFinder,
) EnrichUsecase {
	return &enrichUsecase{terms: terms, explainer: explainer, speaker: speaker, images: images}
}

func (u *enrichUsecase) Explain(ctx context.Context, term, contextSentence string) entity.TermExplanation {
	return u.explainer.ExplainTermInContext(ctx, term, contextSentence)
}

func (u *enrichUsecase) SpeakTerm(ctx context.Context, termID int64) (string, error) {
	term, err := u.terms.GetByID(ctx, termID)
	if err != nil {
		return "", err
	}
	ref := u.speaker.AudioRef(ctx, term.Word)
	if ref == "" {
		return "", nil
	}
	if err := u.terms.Update(ctx, termID, entity.TermUpdate{AudioRef: &ref}); err != nil {
		return "", err
	}
	return ref, nil
}

func (u *enrichUsecase) SpeakText(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return u.speaker.AudioRef(ctx, text)
}

func (u *enrichUsecase) IllustrateTerm(ctx context.Context, termID int64, count int) ([]string, error) {
	term, err := u.terms.GetByID(ctx, termID)
	if err != nil {
		return nil, err
	}
	urls := u.images.URLs(ctx, term.Word, count)
	if len(urls) == 0 {
		return nil, nil
	}
	if err := u.terms.Update(ctx, termID, entity.TermUpdate{ImageRefs: urls}); err != nil {
		return nil, err
	}
	return urls, nil
}
