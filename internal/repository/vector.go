package repository

import "context"

// VectorIndex is the domain-scoped semantic recall index. It is a rebuildable
// recall source, not a system of record: records have no foreign key into the
// relational store and linkage happens only at reconciliation time.
type VectorIndex interface {
	// Upsert indexes each text under a fresh opaque id with the domain as a
	// filterable attribute. Indexing the same text twice produces two records.
	Upsert(ctx context.Context, domainID int64, texts []string) error
	// Query returns up to k texts of the domain ranked by decreasing cosine
	// similarity. It degrades to an empty slice on any failure; callers must
	// treat empty as "no semantic recall", never as an error.
	Query(ctx context.Context, domainID int64, text string, k int) []string
}
