package usecase

import (
	"context"
	"testing"

	"github.com/eslsoft/deepgloss/internal/entity"
)

type stubSpeaker struct {
	ref   string
	calls int
}

func (s *stubSpeaker) AudioRef(_ context.Context, _ string) string {
	s.calls++
	return s.ref
}

type stubImageFinder struct {
	urls []string
}

func (s *stubImageFinder) URLs(_ context.Context, _ string, _ int) []string {
	return s.urls
}

type stubExplainer struct {
	result entity.TermExplanation
}

func (s *stubExplainer) ExplainTermInContext(_ context.Context, _, _ string) entity.TermExplanation {
	return s.result
}

func TestSpeakTerm_PersistsReference(t *testing.T) {
	terms := newMockTermRepo()
	id, err := terms.Add(context.Background(), &entity.Term{DomainID: 1, Word: "wafer", Active: true})
	if err != nil {
		t.Fatalf("seed term: %v", err)
	}
	u := NewEnrichUsecase(terms, &stubExplainer{}, &stubSpeaker{ref: "cache/abc.mp3"}, &stubImageFinder{})

	ref, err := u.SpeakTerm(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "cache/abc.mp3" {
		t.Fatalf("unexpected ref %q", ref)
	}
	term, _ := terms.GetByID(context.Background(), id)
	if term.AudioRef != ref {
		t.Fatalf("expected persisted audio ref, got %q", term.AudioRef)
	}
}

func TestSpeakTerm_SynthesisFailureIsNotAnError(t *testing.T) {
	terms := newMockTermRepo()
	id, err := terms.Add(context.Background(), &entity.Term{DomainID: 1, Word: "wafer", Active: true})
	if err != nil {
		t.Fatalf("seed term: %v", err)
	}
	u := NewEnrichUsecase(terms, &stubExplainer{}, &stubSpeaker{ref: ""}, &stubImageFinder{})

	ref, err := u.SpeakTerm(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "" {
		t.Fatalf("expected empty ref, got %q", ref)
	}
	if update, ok := terms.updates[id]; ok {
		t.Fatalf("expected no persisted update, got %+v", update)
	}
}

func TestIllustrateTerm_PersistsImageRefs(t *testing.T) {
	terms := newMockTermRepo()
	id, err := terms.Add(context.Background(), &entity.Term{DomainID: 1, Word: "wafer", Active: true})
	if err != nil {
		t.Fatalf("seed term: %v", err)
	}
	urls := []string{"https://example.com/a.jpg", "https://example.com/b.png"}
	u := NewEnrichUsecase(terms, &stubExplainer{}, &stubSpeaker{}, &stubImageFinder{urls: urls})

	got, err := u.IllustrateTerm(context.Background(), id, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 urls, got %v", got)
	}
	term, _ := terms.GetByID(context.Background(), id)
	if len(term.ImageRefs) != 2 {
		t.Fatalf("expected persisted image refs, got %v", term.ImageRefs)
	}
}
