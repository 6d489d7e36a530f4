package usecase

import (
	"context"
	"testing"
)

func TestFindContext_ExactSkipsSemantic(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	vector := &mockVectorIndex{queryResults: []string{"should never be consulted"}}
	sentences.seed(1, "The photoresist coats the wafer evenly.")

	u := NewRetrieverUsecase(sentences, matches, vector, 5)
	got, err := u.FindContext(context.Background(), 10, 1, "wafer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a candidate")
	}
	if got.Virtual {
		t.Fatal("expected a relational candidate")
	}
	if vector.queryCalls != 0 {
		t.Fatalf("semantic index consulted %d times despite exact hits", vector.queryCalls)
	}
}

func TestFindContext_SemanticFallbackReturnsVirtual(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	vector := &mockVectorIndex{queryResults: []string{"A phrase close in meaning to the query."}}

	u := NewRetrieverUsecase(sentences, matches, vector, 5)
	got, err := u.FindContext(context.Background(), 10, 1, "etching")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a virtual candidate")
	}
	if !got.Virtual {
		t.Fatal("expected candidate to be virtual")
	}
	if got.SentenceID >= 0 {
		t.Fatalf("virtual candidate must carry a synthetic negative id, got %d", got.SentenceID)
	}
	if vector.queryCalls != 1 {
		t.Fatalf("expected one semantic query, got %d", vector.queryCalls)
	}
}

func TestFindContext_PicksLongestSentence(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	vector := &mockVectorIndex{}
	sentences.seed(1, "wafer short")                                           // 11 chars
	want := sentences.seed(1, "The wafer is inspected after every etch step.") // longest
	sentences.seed(1, "wafer")                                                 // 5 chars

	u := NewRetrieverUsecase(sentences, matches, vector, 5)
	got, err := u.FindContext(context.Background(), 10, 1, "wafer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.SentenceID != want {
		t.Fatalf("expected sentence %d, got %+v", want, got)
	}
}

func TestFindContext_LinkedWinsDedup(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	vector := &mockVectorIndex{}
	id := sentences.seed(1, "The wafer is polished before bonding.")
	if err := matches.Add(context.Background(), 10, id); err != nil {
		t.Fatalf("seed match: %v", err)
	}

	u := NewRetrieverUsecase(sentences, matches, vector, 5)
	got, err := u.FindContext(context.Background(), 10, 1, "wafer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same sentence reaches the pool via both the link join and exact search;
	// the linked copy must survive dedup.
	if got == nil || got.SentenceID != id {
		t.Fatalf("expected sentence %d, got %+v", id, got)
	}
	if !got.Linked {
		t.Fatal("expected the linked copy to win dedup")
	}
}

func TestFindContext_EmptyEverywhere(t *testing.T) {
	sentences := newMockSentenceRepo()
	matches := newMockMatchRepo(sentences)
	vector := &mockVectorIndex{}

	u := NewRetrieverUsecase(sentences, matches, vector, 5)
	got, err := u.FindContext(context.Background(), 10, 1, "lithography")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil candidate, got %+v", got)
	}
}
