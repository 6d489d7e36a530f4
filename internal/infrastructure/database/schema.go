package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so Migrate can run on every startup.
// content_en uniqueness is intentionally global, not per domain: the same
// sentence stored from two domains resolves to one row.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS domain (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS terms (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		domain_id  INTEGER NOT NULL REFERENCES domain(id),
		word       TEXT NOT NULL,
		definition TEXT NOT NULL DEFAULT '',
		frequency  INTEGER NOT NULL DEFAULT 1,
		star_level INTEGER NOT NULL DEFAULT 1,
		audio_ref  TEXT,
		image_refs TEXT,
		is_active  INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_terms_domain_word ON terms(domain_id, LOWER(word))`,
	`CREATE TABLE IF NOT EXISTS sentences (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		domain_id      INTEGER NOT NULL REFERENCES domain(id),
		content_en     TEXT NOT NULL UNIQUE,
		content_cn     TEXT,
		cn_explanation TEXT,
		audio_ref      TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		term_id     INTEGER NOT NULL REFERENCES terms(id),
		sentence_id INTEGER NOT NULL REFERENCES sentences(id),
		UNIQUE(term_id, sentence_id)
	)`,
}

// Migrate creates the relational schema when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}
