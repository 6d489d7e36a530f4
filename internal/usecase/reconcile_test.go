package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/deepgloss/internal/entity"
)

func TestConfirm_VirtualCandidateCreatesSentence(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	u := NewReconcileUsecase(sentences, matches)

	candidate := entity.VirtualCandidate(1, 0, "Doping alters the conductivity of silicon.")
	id, err := u.Confirm(context.Background(), 10, 1, candidate, entity.SentenceUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected a relational id, got %d", id)
	}
	if !matches.pairs[matchPair{termID: 10, sentenceID: id}] {
		t.Fatal("expected a match row")
	}
}

func TestConfirm_BridgesToExistingContent(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	existing := sentences.seed(1, "Doping alters the conductivity of silicon.")
	u := NewReconcileUsecase(sentences, matches)

	candidate := entity.VirtualCandidate(1, 0, "Doping alters the conductivity of silicon.")
	id, err := u.Confirm(context.Background(), 10, 1, candidate, entity.SentenceUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != existing {
		t.Fatalf("expected bridge to existing sentence %d, got %d", existing, id)
	}
	if sentences.addCalls != 0 {
		t.Fatalf("expected no insert, got %d", sentences.addCalls)
	}
}

func TestConfirm_RelationalCandidateSkipsPromotion(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	id := sentences.seed(1, "Annealing repairs the crystal lattice.")
	u := NewReconcileUsecase(sentences, matches)

	candidate := entity.CandidateFromSentence(*sentences.sentences[id], false)
	got, err := u.Confirm(context.Background(), 10, 1, candidate, entity.SentenceUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("expected id %d, got %d", id, got)
	}
	if sentences.addCalls != 0 {
		t.Fatalf("expected no insert for relational candidate, got %d", sentences.addCalls)
	}
}

func TestConfirm_Idempotent(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	u := NewReconcileUsecase(sentences, matches)

	candidate := entity.VirtualCandidate(1, 0, "Annealing repairs the crystal lattice.")
	first, err := u.Confirm(context.Background(), 10, 1, candidate, entity.SentenceUpdate{})
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	second, err := u.Confirm(context.Background(), 10, 1, candidate, entity.SentenceUpdate{})
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if first != second {
		t.Fatalf("expected same sentence id, got %d and %d", first, second)
	}
	if len(sentences.sentences) != 1 {
		t.Fatalf("expected one sentence row, got %d", len(sentences.sentences))
	}
	if len(matches.pairs) != 1 {
		t.Fatalf("expected one match row, got %d", len(matches.pairs))
	}
}

func TestConfirm_AppliesNonEmptyFieldsOnly(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	u := NewReconcileUsecase(sentences, matches)

	cn := "硅的导电性"
	blank := ""
	candidate := entity.VirtualCandidate(1, 0, "Doping alters the conductivity of silicon.")
	id, err := u.Confirm(context.Background(), 10, 1, candidate, entity.SentenceUpdate{
		ContentCN: &cn,
		AudioRef:  &blank,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update, ok := sentences.updates[id]
	if !ok {
		t.Fatal("expected an update to be applied")
	}
	if update.ContentCN == nil || *update.ContentCN != cn {
		t.Fatalf("expected content_cn update, got %+v", update)
	}
	if update.AudioRef != nil {
		t.Fatal("blank audio ref must be pruned, not persisted")
	}
}

func TestConfirm_NoUpdateWhenAllFieldsBlank(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	u := NewReconcileUsecase(sentences, matches)

	blank := ""
	candidate := entity.VirtualCandidate(1, 0, "Doping alters the conductivity of silicon.")
	id, err := u.Confirm(context.Background(), 10, 1, candidate, entity.SentenceUpdate{ContentCN: &blank})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sentences.updates[id]; ok {
		t.Fatal("expected no update for all-blank fields")
	}
}

func TestConfirm_RejectsEmptyContent(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	u := NewReconcileUsecase(sentences, matches)

	_, err := u.Confirm(context.Background(), 10, 1, entity.Candidate{}, entity.SentenceUpdate{})
	if !errors.Is(err, entity.ErrInvalidCandidate) {
		t.Fatalf("expected ErrInvalidCandidate, got %v", err)
	}
}
