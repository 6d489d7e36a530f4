package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
)

// VocabUsecase covers domain and term lifecycle plus sentence listing.
type VocabUsecase interface {
	// EnsureDomain returns the id of the named domain, creating it on first
	// use.
	EnsureDomain(ctx context.Context, name string) (int64, error)
	ListDomains(ctx context.Context) ([]entity.Domain, error)

	// AddTerm inserts a term into a domain, returning the existing id when a
	// case-insensitive duplicate is already present.
	AddTerm(ctx context.Context, domainID int64, word, definition string) (int64, error)
	Term(ctx context.Context, id int64) (*entity.Term, error)
	Terms(ctx context.Context, domainID int64, onlyActive bool) ([]entity.Term, error)
	UpdateTerm(ctx context.Context, id int64, fields entity.TermUpdate) error
	BulkUpdateTerms(ctx context.Context, terms []entity.Term) error

	Sentences(ctx context.Context, domainID int64) ([]entity.Sentence, error)
	UpdateSentence(ctx context.Context, id int64, fields entity.SentenceUpdate) error
}

type vocabUsecase struct {
	domains   repository.DomainRepository
	terms     repository.TermRepository
	sentences repository.SentenceRepository
}

// NewVocabUsecase wires the vocabulary manager.
func NewVocabUsecase(
	domains repository.DomainRepository,
	terms repository.TermRepository,
	sentences repository.SentenceRepository,
) VocabUsecase {
	return &vocabUsecase{domains: domains, terms: terms, sentences: sentences}
}

func (u *vocabUsecase) EnsureDomain(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, entity.ErrInvalidDomainName
	}
	return u.domains.Ensure(ctx, name)
}

func (u *vocabUsecase) ListDomains(ctx context.Context) ([]entity.Domain, error) {
	return u.domains.List(ctx)
}

func (u *vocabUsecase) AddTerm(ctx context.Context, domainID int64, word, definition string) (int64, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return 0, entity.ErrInvalidTermWord
	}
	return u.terms.Add(ctx, &entity.Term{
		DomainID:   domainID,
		Word:       word,
		Definition: strings.TrimSpace(definition),
		Frequency:  1,
		StarLevel:  1,
		Active:     true,
	})
}

func (u *vocabUsecase) Term(ctx context.Context, id int64) (*entity.Term, error) {
	return u.terms.GetByID(ctx, id)
}

func (u *vocabUsecase) Terms(ctx context.Context, domainID int64, onlyActive bool) ([]entity.Term, error) {
	return u.terms.ListByDomain(ctx, domainID, onlyActive)
}

func (u *vocabUsecase) UpdateTerm(ctx context.Context, id int64, fields entity.TermUpdate) error {
	if id <= 0 {
		return entity.ErrInvalidTermID
	}
	return u.terms.Update(ctx, id, fields)
}

func (u *vocabUsecase) BulkUpdateTerms(ctx context.Context, terms []entity.Term) error {
	for i := range terms {
		if terms[i].ID <= 0 {
			return entity.ErrInvalidTermID
		}
		if strings.TrimSpace(terms[i].Word) == "" {
			return entity.ErrInvalidTermWord
		}
	}
	return u.terms.BulkUpdate(ctx, terms)
}

func (u *vocabUsecase) Sentences(ctx context.Context, domainID int64) ([]entity.Sentence, error) {
	return u.sentences.ListByDomain(ctx, domainID)
}

func (u *vocabUsecase) UpdateSentence(ctx context.Context, id int64, fields entity.SentenceUpdate) error {
	return u.sentences.Update(ctx, id, fields)
}
