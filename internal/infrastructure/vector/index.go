// Package vector implements the domain-scoped semantic recall index on top
// of a sqvect sqlite store. The index is rebuildable from raw corpus text and
// is never the system of record.
package vector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/liliang-cn/sqvect/v2/pkg/core"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
	"github.com/eslsoft/deepgloss/internal/repository"
)

// Embedder converts text into vectors for nearest-neighbor comparison.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dim() int
}

const metadataDomainKey = "domain_id"

// Index stores one record per indexed text under a fresh uuid, with the
// domain id attached as a filterable attribute.
type Index struct {
	store    *core.SQLiteStore
	embedder Embedder
	logger   *logrus.Logger
}

// NewIndex opens (or creates) the sqvect store backing the semantic index.
func NewIndex(cfg *config.Config, embedder Embedder, logger *logrus.Logger) (*Index, func(), error) {
	if dir := filepath.Dir(cfg.Vector.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create vector store directory: %w", err)
		}
	}

	store, err := core.New(cfg.Vector.Path, embedder.Dim())
	if err != nil {
		return nil, nil, fmt.Errorf("create vector store: %w", err)
	}
	if err := store.Init(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("init vector store: %w", err)
	}

	idx := &Index{store: store, embedder: embedder, logger: logger}
	return idx, func() { _ = store.Close() }, nil
}

var _ repository.VectorIndex = (*Index)(nil)

// Upsert embeds and indexes the given texts for the domain. Ids are content
// independent: indexing the same text twice produces two records, which is
// acceptable for a recall source.
func (ix *Index) Upsert(ctx context.Context, domainID int64, texts []string) error {
	if len(texts) == 0 {
		return nil
	}

	vectors, err := ix.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed corpus batch: %w", err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
	}

	embeddings := make([]*core.Embedding, len(texts))
	for i, text := range texts {
		embeddings[i] = &core.Embedding{
			ID:      uuid.NewString(),
			Vector:  vectors[i],
			Content: text,
			Metadata: map[string]string{
				metadataDomainKey: strconv.FormatInt(domainID, 10),
			},
		}
	}
	if err := ix.store.UpsertBatch(ctx, embeddings); err != nil {
		return fmt.Errorf("upsert embeddings: %w", err)
	}
	return nil
}

// Query returns up to k texts of the domain by decreasing cosine similarity.
// Any failure degrades to an empty result; callers treat empty as "no
// semantic recall", not as an error.
func (ix *Index) Query(ctx context.Context, domainID int64, text string, k int) []string {
	vec, err := ix.embedder.Embed(ctx, text)
	if err != nil {
		ix.logger.WithError(err).Warn("semantic recall degraded: embed query failed")
		return nil
	}

	results, err := ix.store.Search(ctx, vec, core.SearchOptions{
		TopK: k,
		Filter: map[string]string{
			metadataDomainKey: strconv.FormatInt(domainID, 10),
		},
	})
	if err != nil {
		ix.logger.WithError(err).Warn("semantic recall degraded: vector search failed")
		return nil
	}

	return lo.Map(results, func(r core.ScoredEmbedding, _ int) string {
		return r.Content
	})
}
