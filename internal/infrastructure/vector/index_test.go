package vector

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
)

// fakeEmbedder maps each distinct text onto its own axis so cosine search
// returns exact-text matches first.
type fakeEmbedder struct {
	dim   int
	axes  map[string]int
	fail  bool
	calls int
}

func newFakeEmbedder(dim int) *fakeEmbedder {
	return &fakeEmbedder{dim: dim, axes: make(map[string]int)}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.fail {
		return nil, fmt.Errorf("embedder down")
	}
	axis, ok := f.axes[text]
	if !ok {
		axis = len(f.axes) % f.dim
		f.axes[text] = axis
	}
	vec := make([]float32, f.dim)
	vec[axis] = 1
	return vec, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Dim() int { return f.dim }

func newTestIndex(t *testing.T, embedder Embedder) *Index {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{Vector: config.VectorConfig{
		Path: filepath.Join(t.TempDir(), "vectors.db"),
		Dim:  8,
	}}
	idx, cleanup, err := NewIndex(cfg, embedder, logger)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	t.Cleanup(cleanup)
	return idx
}

func TestIndex_UpsertAndQuery(t *testing.T) {
	embedder := newFakeEmbedder(8)
	idx := newTestIndex(t, embedder)
	ctx := context.Background()

	texts := []string{
		"The wafer is polished.",
		"Plasma ignites at low pressure.",
	}
	if err := idx.Upsert(ctx, 1, texts); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got := idx.Query(ctx, 1, "The wafer is polished.", 1)
	if len(got) != 1 || got[0] != texts[0] {
		t.Fatalf("unexpected recall %v", got)
	}
}

func TestIndex_QueryScopedToDomain(t *testing.T) {
	embedder := newFakeEmbedder(8)
	idx := newTestIndex(t, embedder)
	ctx := context.Background()

	if err := idx.Upsert(ctx, 1, []string{"The wafer is polished."}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if got := idx.Query(ctx, 2, "The wafer is polished.", 5); len(got) != 0 {
		t.Fatalf("expected no recall from another domain, got %v", got)
	}
}

func TestIndex_QueryDegradesOnEmbedderFailure(t *testing.T) {
	embedder := newFakeEmbedder(8)
	idx := newTestIndex(t, embedder)
	ctx := context.Background()

	if err := idx.Upsert(ctx, 1, []string{"The wafer is polished."}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	embedder.fail = true
	if got := idx.Query(ctx, 1, "anything", 5); got != nil {
		t.Fatalf("expected degraded empty recall, got %v", got)
	}
}

func TestIndex_UpsertEmptyIsNoop(t *testing.T) {
	embedder := newFakeEmbedder(8)
	idx := newTestIndex(t, embedder)

	if err := idx.Upsert(context.Background(), 1, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embedder.calls != 0 {
		t.Fatalf("expected no embed calls, got %d", embedder.calls)
	}
}
