package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/repository"
	"github.com/eslsoft/deepgloss/pkg/textseg"
)

// IngestUsecase loads vocabulary lists and raw corpus text into a domain, and
// feeds sentence material into the semantic index.
type IngestUsecase interface {
	// Process registers the term list, segments the corpus into sentences and
	// stores every sentence that contains at least one term as a whole word,
	// together with the term matches. It returns the number of sentences
	// stored.
	Process(ctx context.Context, domainID int64, words []string, corpus string) (int, error)
	// IndexCorpus segments the corpus and pushes each usable sentence into
	// the semantic index. It returns the number of sentences indexed.
	IndexCorpus(ctx context.Context, domainID int64, corpus string) (int, error)
}

type ingestUsecase struct {
	terms     repository.TermRepository
	sentences repository.SentenceRepository
	matches   repository.MatchRepository
	vector    repository.VectorIndex
	logger    *logrus.Logger
}

// NewIngestUsecase wires the ingestion engine.
func NewIngestUsecase(
	terms repository.TermRepository,
	sentences repository.SentenceRepository,
	matches repository.MatchRepository,
	vector repository.VectorIndex,
	logger *logrus.Logger,
) IngestUsecase {
	return &ingestUsecase{
		terms:     terms,
		sentences: sentences,
		matches:   matches,
		vector:    vector,
		logger:    logger,
	}
}

type ingestedTerm struct {
	word string
	id   int64
}

func (u *ingestUsecase) Process(ctx context.Context, domainID int64, words []string, corpus string) (int, error) {
	seen := make(map[string]bool, len(words))
	registered := make([]ingestedTerm, 0, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" || seen[entity.NormalizeWord(word)] {
			continue
		}
		seen[entity.NormalizeWord(word)] = true
		id, err := u.terms.Add(ctx, &entity.Term{
			DomainID:  domainID,
			Word:      word,
			Frequency: 1,
			StarLevel: 1,
			Active:    true,
		})
		if err != nil {
			return 0, err
		}
		registered = append(registered, ingestedTerm{word: word, id: id})
	}

	stored := 0
	for _, sentence := range usableSentences(corpus) {
		var matched []int64
		for _, term := range registered {
			if textseg.ContainsWord(sentence, term.word) {
				matched = append(matched, term.id)
			}
		}
		// Sentences with no term occurrence are noise for study purposes
		// and are not persisted.
		if len(matched) == 0 {
			continue
		}

		sentenceID, err := u.sentences.Add(ctx, domainID, sentence)
		if err != nil {
			return stored, err
		}
		for _, termID := range matched {
			if err := u.matches.Add(ctx, termID, sentenceID); err != nil {
				return stored, err
			}
		}
		stored++
	}

	u.logger.WithFields(logrus.Fields{
		"domain_id": domainID,
		"terms":     len(registered),
		"sentences": stored,
	}).Info("corpus processed")
	return stored, nil
}

func (u *ingestUsecase) IndexCorpus(ctx context.Context, domainID int64, corpus string) (int, error) {
	sentences := usableSentences(corpus)
	if len(sentences) == 0 {
		return 0, nil
	}
	if err := u.vector.Upsert(ctx, domainID, sentences); err != nil {
		return 0, err
	}
	u.logger.WithFields(logrus.Fields{
		"domain_id": domainID,
		"sentences": len(sentences),
	}).Info("corpus indexed")
	return len(sentences), nil
}

// usableSentences segments the corpus and drops fragments too short to serve
// as study context.
func usableSentences(corpus string) []string {
	var out []string
	for _, s := range textseg.Split(corpus) {
		if textseg.Length(s) >= textseg.MinSentenceLength {
			out = append(out, s)
		}
	}
	return out
}
