package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/deepgloss/internal/entity"
)

type mockDomainRepo struct {
	domains map[string]int64
	nextID  int64
}

func newMockDomainRepo() *mockDomainRepo {
	return &mockDomainRepo{domains: make(map[string]int64), nextID: 1}
}

func (m *mockDomainRepo) Ensure(_ context.Context, name string) (int64, error) {
	if id, ok := m.domains[name]; ok {
		return id, nil
	}
	id := m.nextID
	m.nextID++
	m.domains[name] = id
	return id, nil
}

func (m *mockDomainRepo) GetByID(_ context.Context, id int64) (*entity.Domain, error) {
	for name, got := range m.domains {
		if got == id {
			return &entity.Domain{ID: id, Name: name}, nil
		}
	}
	return nil, entity.ErrDomainNotFound
}

func (m *mockDomainRepo) List(_ context.Context) ([]entity.Domain, error) {
	out := make([]entity.Domain, 0, len(m.domains))
	for name, id := range m.domains {
		out = append(out, entity.Domain{ID: id, Name: name})
	}
	return out, nil
}

type mockTermRepo struct {
	terms   map[int64]*entity.Term
	nextID  int64
	updates map[int64]entity.TermUpdate
}

func newMockTermRepo() *mockTermRepo {
	return &mockTermRepo{
		terms:   make(map[int64]*entity.Term),
		nextID:  1,
		updates: make(map[int64]entity.TermUpdate),
	}
}

func (m *mockTermRepo) Add(_ context.Context, term *entity.Term) (int64, error) {
	for id, existing := range m.terms {
		if existing.DomainID == term.DomainID &&
			entity.NormalizeWord(existing.Word) == entity.NormalizeWord(term.Word) {
			return id, nil
		}
	}
	id := m.nextID
	m.nextID++
	stored := *term
	stored.ID = id
	m.terms[id] = &stored
	return id, nil
}

func (m *mockTermRepo) GetByID(_ context.Context, id int64) (*entity.Term, error) {
	term, ok := m.terms[id]
	if !ok {
		return nil, entity.ErrTermNotFound
	}
	return term, nil
}

func (m *mockTermRepo) ListByDomain(_ context.Context, domainID int64, onlyActive bool) ([]entity.Term, error) {
	var out []entity.Term
	for _, term := range m.terms {
		if term.DomainID != domainID {
			continue
		}
		if onlyActive && !term.Active {
			continue
		}
		out = append(out, *term)
	}
	return out, nil
}

func (m *mockTermRepo) Update(_ context.Context, id int64, update entity.TermUpdate) error {
	if _, ok := m.terms[id]; !ok {
		return entity.ErrTermNotFound
	}
	m.updates[id] = update
	if update.AudioRef != nil {
		m.terms[id].AudioRef = *update.AudioRef
	}
	if update.Definition != nil {
		m.terms[id].Definition = *update.Definition
	}
	if update.StarLevel != nil {
		m.terms[id].StarLevel = *update.StarLevel
	}
	if update.ImageRefs != nil {
		m.terms[id].ImageRefs = update.ImageRefs
	}
	return nil
}

func (m *mockTermRepo) BulkUpdate(_ context.Context, terms []entity.Term) error {
	for _, term := range terms {
		if _, ok := m.terms[term.ID]; !ok {
			return entity.ErrTermNotFound
		}
		stored := term
		m.terms[term.ID] = &stored
	}
	return nil
}

type mockSentenceRepo struct {
	sentences map[int64]*entity.Sentence
	nextID    int64
	addCalls  int
	updates   map[int64]entity.SentenceUpdate
}

func newMockSentenceRepo() *mockSentenceRepo {
	return &mockSentenceRepo{
		sentences: make(map[int64]*entity.Sentence),
		nextID:    1,
		updates:   make(map[int64]entity.SentenceUpdate),
	}
}

func (m *mockSentenceRepo) seed(domainID int64, content string) int64 {
	id := m.nextID
	m.nextID++
	m.sentences[id] = &entity.Sentence{ID: id, DomainID: domainID, ContentEN: content}
	return id
}

func (m *mockSentenceRepo) Add(_ context.Context, domainID int64, content string) (int64, error) {
	m.addCalls++
	for id, s := range m.sentences {
		if s.ContentEN == content {
			return id, nil
		}
	}
	return m.seed(domainID, content), nil
}

func (m *mockSentenceRepo) GetByID(_ context.Context, id int64) (*entity.Sentence, error) {
	s, ok := m.sentences[id]
	if !ok {
		return nil, entity.ErrSentenceNotFound
	}
	return s, nil
}

func (m *mockSentenceRepo) FindByContent(_ context.Context, content string) (*entity.Sentence, error) {
	for _, s := range m.sentences {
		if s.ContentEN == content {
			return s, nil
		}
	}
	return nil, nil
}

func (m *mockSentenceRepo) SearchByText(_ context.Context, domainID int64, termText string) ([]entity.Sentence, error) {
	var out []entity.Sentence
	for id := int64(1); id < m.nextID; id++ {
		s, ok := m.sentences[id]
		if !ok || s.DomainID != domainID {
			continue
		}
		if strings.Contains(strings.ToLower(s.ContentEN), strings.ToLower(termText)) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSentenceRepo) ListByDomain(_ context.Context, domainID int64) ([]entity.Sentence, error) {
	var out []entity.Sentence
	for id := int64(1); id < m.nextID; id++ {
		if s, ok := m.sentences[id]; ok && s.DomainID == domainID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSentenceRepo) Update(_ context.Context, id int64, update entity.SentenceUpdate) error {
	if _, ok := m.sentences[id]; !ok {
		return entity.ErrSentenceNotFound
	}
	m.updates[id] = update
	if update.ContentCN != nil {
		m.sentences[id].ContentCN = *update.ContentCN
	}
	if update.AudioRef != nil {
		m.sentences[id].AudioRef = *update.AudioRef
	}
	if update.CNExplanation != nil {
		m.sentences[id].CNExplanation = *update.CNExplanation
	}
	return nil
}

func (m *mockSentenceRepo) UpsertAudio(ctx context.Context, domainID int64, content, audioRef string) error {
	id, err := m.Add(ctx, domainID, content)
	if err != nil {
		return err
	}
	m.sentences[id].AudioRef = audioRef
	return nil
}

type matchPair struct {
	termID     int64
	sentenceID int64
}

type mockMatchRepo struct {
	sentences *mockSentenceRepo
	pairs     map[matchPair]bool
	order     []matchPair
}

func newMockMatchRepo(sentences *mockSentenceRepo) *mockMatchRepo {
	return &mockMatchRepo{sentences: sentences, pairs: make(map[matchPair]bool)}
}

func (m *mockMatchRepo) Add(_ context.Context, termID, sentenceID int64) error {
	p := matchPair{termID: termID, sentenceID: sentenceID}
	if m.pairs[p] {
		return nil
	}
	m.pairs[p] = true
	m.order = append(m.order, p)
	return nil
}

func (m *mockMatchRepo) SentencesForTerm(_ context.Context, termID int64) ([]entity.Sentence, error) {
	var out []entity.Sentence
	for _, p := range m.order {
		if p.termID != termID {
			continue
		}
		if s, ok := m.sentences.sentences[p.sentenceID]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

type mockVectorIndex struct {
	queryResults []string
	queryCalls   int
	upserted     []string
}

func (m *mockVectorIndex) Upsert(_ context.Context, _ int64, texts []string) error {
	m.upserted = append(m.upserted, texts...)
	return nil
}

func (m *mockVectorIndex) Query(_ context.Context, _ int64, _ string, _ int) []string {
	m.queryCalls++
	return m.queryResults
}
